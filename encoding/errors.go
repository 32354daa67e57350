package encoding

import (
	"fmt"

	"github.com/corpix/taiji/errors"
)

type ErrorKind string

const (
	ErrorKindLength           ErrorKind = "length"
	ErrorKindInvalidCharacter ErrorKind = "invalid-character"
	ErrorKindInvalidEncoding  ErrorKind = "invalid-encoding"
	ErrorKindSize             ErrorKind = "size"
)

var (
	ErrLength           = errors.New("input length is not a multiple of 4")
	ErrInvalidCharacter = errors.New("input contains invalid character")
	ErrInvalidEncoding  = errors.New("decoded data is not valid utf-8 text")
	ErrDecodedSize      = errors.New("decoded data exceeds size limit")
)

type (
	// LengthError reports an encoded input whose length is not a multiple of 4.
	LengthError struct {
		Length int
	}
	// InvalidCharacterError reports a character which is absent from the
	// lookup table or a padding character in a position where padding is
	// not allowed. Offset is counted in characters.
	InvalidCharacterError struct {
		Offset int
		Char   rune
	}
	// TextEncodingError reports decoded bytes which are not valid UTF-8.
	// Offset points to the first invalid byte.
	TextEncodingError struct {
		Offset int
	}
	// SizeError reports decompressed data larger than Limit bytes.
	SizeError struct {
		Limit uint64
	}
)

func (e *LengthError) Error() string {
	return fmt.Sprintf("input length %d is not a multiple of 4", e.Length)
}
func (e *LengthError) Is(err error) bool { return err == ErrLength }

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
}
func (e *InvalidCharacterError) Is(err error) bool { return err == ErrInvalidCharacter }

func (e *TextEncodingError) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence at offset %d", e.Offset)
}
func (e *TextEncodingError) Is(err error) bool { return err == ErrInvalidEncoding }

func (e *SizeError) Error() string {
	return fmt.Sprintf("decoded data exceeds limit of %d bytes", e.Limit)
}
func (e *SizeError) Is(err error) bool { return err == ErrDecodedSize }

//

// Kind returns the kind of a decoding error, or an empty kind for
// errors which did not originate in this package.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrLength):
		return ErrorKindLength
	case errors.Is(err, ErrInvalidCharacter):
		return ErrorKindInvalidCharacter
	case errors.Is(err, ErrInvalidEncoding):
		return ErrorKindInvalidEncoding
	case errors.Is(err, ErrDecodedSize):
		return ErrorKindSize
	default:
		return ""
	}
}
