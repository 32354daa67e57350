package encoding

import (
	"unicode/utf8"
)

// EncodeDecoderBase64 transcodes data to the standard padded base64.
// Decode validates the result as UTF-8 text unless Binary is set.
type EncodeDecoderBase64 struct {
	Binary bool
}

var _ EncodeDecoder = &EncodeDecoderBase64{}

//

func (e *EncodeDecoderBase64) Encode(buf []byte) ([]byte, error) {
	return []byte(Base64Encode(buf)), nil
}

func (e *EncodeDecoderBase64) Decode(buf []byte) ([]byte, error) {
	decoded, err := Base64Decode(string(buf))
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

func NewEncodeDecoderBase64() *EncodeDecoderBase64 {
	return &EncodeDecoderBase64{}
}

//

// Base64EncodedLen returns the length of the base64 encoding of n bytes.
func Base64EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Base64Encode encodes buf into padded standard base64.
func Base64Encode(buf []byte) string {
	encoded := make([]byte, Base64EncodedLen(len(buf)))
	dst := encoded

	for n := 0; n < len(buf); n += 3 {
		var chunk [3]byte
		size := copy(chunk[:], buf[n:])
		v := uint32(chunk[0])<<16 | uint32(chunk[1])<<8 | uint32(chunk[2])

		dst[0] = Base64Table[v>>18&0x3f]
		dst[1] = Base64Table[v>>12&0x3f]
		dst[2] = Base64Table[v>>6&0x3f]
		dst[3] = Base64Table[v&0x3f]

		// missing input bytes turn the tail of the group into padding
		for pad := 3 - size; pad > 0; pad-- {
			dst[4-pad] = Base64Padding
		}
		dst = dst[4:]
	}

	return string(encoded)
}

// Base64Decode decodes padded standard base64.
//
// Padding is accepted only at the end of the final group: "xxx=" or "xx==".
// Any other padding character is reported as InvalidCharacterError.
// Offsets in returned errors are byte offsets into s.
func Base64Decode(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, &LengthError{Length: len(s)}
	}

	decoded := make([]byte, 0, len(s)/4*3)
	for offset := 0; offset < len(s); offset += 4 {
		group := s[offset : offset+4]

		pad := 0
		if offset+4 == len(s) && group[3] == Base64Padding {
			pad++
			if group[2] == Base64Padding {
				pad++
			}
		}

		var v uint32
		for n := 0; n < 4-pad; n++ {
			index, ok := Base64Index(group[n])
			if !ok || index == PaddingIndex {
				r, _ := utf8.DecodeRuneInString(s[offset+n:])
				return nil, &InvalidCharacterError{Offset: offset + n, Char: r}
			}
			v |= uint32(index) << (18 - 6*n)
		}

		decoded = append(decoded, byte(v>>16))
		if pad < 2 {
			decoded = append(decoded, byte(v>>8))
		}
		if pad < 1 {
			decoded = append(decoded, byte(v))
		}
	}

	return decoded, nil
}

// Base64DecodeText decodes base64 and validates the result as UTF-8 text.
func Base64DecodeText(s string) (string, error) {
	decoded, err := Base64Decode(s)
	if err != nil {
		return "", err
	}
	err = ValidateText(decoded)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ValidateText reports the first invalid UTF-8 sequence in buf.
func ValidateText(buf []byte) error {
	if utf8.Valid(buf) {
		return nil
	}
	for n := 0; n < len(buf); {
		r, size := utf8.DecodeRune(buf[n:])
		if r == utf8.RuneError && size <= 1 {
			return &TextEncodingError{Offset: n}
		}
		n += size
	}
	return nil
}
