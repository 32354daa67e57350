package encoding

import (
	"strings"
	"unicode/utf8"
)

// EncodeDecoderTaiji transcodes data to taiji symbols.
// Decode validates the result as UTF-8 text unless Binary is set.
type EncodeDecoderTaiji struct {
	Binary bool
}

var _ EncodeDecoder = &EncodeDecoderTaiji{}

//

func (e *EncodeDecoderTaiji) Encode(buf []byte) ([]byte, error) {
	return []byte(TaijiEncode(buf)), nil
}

func (e *EncodeDecoderTaiji) Decode(buf []byte) ([]byte, error) {
	decoded, err := TaijiDecodeBytes(string(buf))
	if err != nil {
		return nil, err
	}
	if !e.Binary {
		err = ValidateText(decoded)
		if err != nil {
			return nil, err
		}
	}
	return decoded, nil
}

func NewEncodeDecoderTaiji() *EncodeDecoderTaiji {
	return &EncodeDecoderTaiji{}
}

//

// TaijiEncode encodes buf into base64 and substitutes every base64
// character with the symbol at the same table position.
func TaijiEncode(buf []byte) string {
	encoded := Base64Encode(buf)

	b := strings.Builder{}
	b.Grow(len(encoded) * utf8.RuneLen(TaijiPadding))
	for n := 0; n < len(encoded); n++ {
		index, _ := Base64Index(encoded[n])
		b.WriteRune(TaijiSymbol(index))
	}

	return b.String()
}

// TaijiDecode reverses TaijiEncode and validates the result as UTF-8 text.
func TaijiDecode(s string) (string, error) {
	decoded, err := TaijiDecodeBytes(s)
	if err != nil {
		return "", err
	}
	err = ValidateText(decoded)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// TaijiDecodeBytes reverses TaijiEncode without validating the result.
// Offsets in returned errors are symbol offsets into s.
func TaijiDecodeBytes(s string) ([]byte, error) {
	var (
		encoded = make([]byte, 0, utf8.RuneCountInString(s))
		offset  = 0
	)
	for _, r := range s {
		index, ok := TaijiIndex(r)
		if !ok {
			return nil, &InvalidCharacterError{Offset: offset, Char: r}
		}
		encoded = append(encoded, Base64Table[index])
		offset++
	}

	decoded, err := Base64Decode(string(encoded))
	if e, ok := err.(*InvalidCharacterError); ok {
		// report the symbol instead of the base64 character it maps to
		index, _ := Base64Index(encoded[e.Offset])
		e.Char = TaijiSymbol(index)
	}
	return decoded, err
}
