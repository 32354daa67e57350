package encoding

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/taiji/errors"
)

func TestBase64EncodeStdlib(t *testing.T) {
	src := make([]byte, 1024)
	_, err := rand.Read(src)
	require.Nil(t, err)

	for n := range src {
		want := base64.StdEncoding.EncodeToString(src[:n])
		got := Base64Encode(src[:n])
		if want != got {
			t.Fatalf("#%d: mismatch: %s", n, cmp.Diff(want, got))
		}
		assert.Equal(t, 4*((n+2)/3), len(got))
	}
}

func TestBase64DecodeStdlib(t *testing.T) {
	src := make([]byte, 1024)
	_, err := rand.Read(src)
	require.Nil(t, err)

	for n := range src {
		got, err := Base64Decode(base64.StdEncoding.EncodeToString(src[:n]))
		require.Nil(t, err)
		if diff := cmp.Diff(src[:n], got); diff != "" {
			t.Fatalf("#%d: mismatch: %s", n, diff)
		}
	}
}

func TestBase64Padding(t *testing.T) {
	samples := []struct {
		input   string
		encoded string
	}{
		{"", ""},
		{"a", "YQ=="},
		{"ab", "YWI="},
		{"abc", "YWJj"},
		{"abcd", "YWJjZA=="},
		{"hello world!", "aGVsbG8gd29ybGQh"},
	}
	for _, sample := range samples {
		t.Run(sample.input, func(t *testing.T) {
			assert.Equal(t, sample.encoded, Base64Encode([]byte(sample.input)))

			decoded, err := Base64DecodeText(sample.encoded)
			assert.Nil(t, err)
			assert.Equal(t, sample.input, decoded)
		})
	}
}

func TestBase64DecodeErrors(t *testing.T) {
	samples := []struct {
		name   string
		input  string
		kind   error
		offset int
		char   rune
	}{
		{name: "short", input: "YQ=", kind: ErrLength},
		{name: "long", input: "YWJjZ", kind: ErrLength},
		{name: "invalid", input: "YW*j", kind: ErrInvalidCharacter, offset: 2, char: '*'},
		{name: "invalid second group", input: "YWJjZ-==", kind: ErrInvalidCharacter, offset: 5, char: '-'},
		{name: "non-ascii", input: "YWä", kind: ErrInvalidCharacter, offset: 2, char: 'ä'},
		{name: "padding first", input: "=WJj", kind: ErrInvalidCharacter, offset: 0, char: '='},
		{name: "padding in middle group", input: "YQ==YWJj", kind: ErrInvalidCharacter, offset: 2, char: '='},
		{name: "padding before data", input: "YW=j", kind: ErrInvalidCharacter, offset: 2, char: '='},
		{name: "three padding", input: "Y===", kind: ErrInvalidCharacter, offset: 1, char: '='},
		{name: "only padding", input: "====", kind: ErrInvalidCharacter, offset: 0, char: '='},
	}
	for _, sample := range samples {
		t.Run(sample.name, func(t *testing.T) {
			_, err := Base64Decode(sample.input)
			require.NotNil(t, err)
			assert.True(t, errors.Is(err, sample.kind), err.Error())

			var e *InvalidCharacterError
			if errors.As(err, &e) {
				assert.Equal(t, sample.offset, e.Offset)
				assert.Equal(t, sample.char, e.Char)
			}
		})
	}
}

func TestBase64DecodeText(t *testing.T) {
	_, err := Base64DecodeText(base64.StdEncoding.EncodeToString([]byte{'o', 'k', 0xff, 0xfe}))
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEncoding))

	var e *TextEncodingError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 2, e.Offset)
}

func TestValidateText(t *testing.T) {
	assert.Nil(t, ValidateText(nil))
	assert.Nil(t, ValidateText([]byte("你好 �")))
	assert.NotNil(t, ValidateText([]byte{0xe4, 0xbd}))
}

func TestEncodeDecoderBase64(t *testing.T) {
	e := NewEncodeDecoderBase64()
	encoded, err := e.Encode([]byte("你好世界!"))
	assert.Nil(t, err)
	assert.Equal(t, "5L2g5aW95LiW55WMIQ==", string(encoded))

	decoded, err := e.Decode(encoded)
	assert.Nil(t, err)
	assert.Equal(t, "你好世界!", string(decoded))

	_, err = e.Decode([]byte("/w=="))
	assert.True(t, errors.Is(err, ErrInvalidEncoding))

	e.Binary = true
	decoded, err = e.Decode([]byte("/w=="))
	assert.Nil(t, err)
	assert.Equal(t, []byte{0xff}, decoded)
}
