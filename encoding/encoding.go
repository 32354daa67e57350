package encoding

import (
	"strings"

	"github.com/corpix/taiji/errors"
	"github.com/corpix/taiji/reflect"
)

type (
	EncodeDecoder interface {
		Encode([]byte) ([]byte, error)
		Decode([]byte) ([]byte, error)
	}
	EncodeDecoderType string
	CompressType      string

	Config struct {
		Type           string `yaml:"type"`
		Compress       string `yaml:"compress"`
		MaxDecodedSize uint64 `yaml:"max-decoded-size,omitempty"`
	}
)

const (
	EncodeDecoderTypeTaiji  EncodeDecoderType = "taiji"
	EncodeDecoderTypeBase64 EncodeDecoderType = "base64"

	CompressTypeNone CompressType = "none"
	CompressTypeZstd CompressType = "zstd"

	DefaultMaxDecodedSize = 16 << 20
)

var (
	EncodeDecoderTypes = map[string]EncodeDecoderType{
		string(EncodeDecoderTypeTaiji):  EncodeDecoderTypeTaiji,
		string(EncodeDecoderTypeBase64): EncodeDecoderTypeBase64,
	}
	CompressTypes = map[string]CompressType{
		string(CompressTypeNone): CompressTypeNone,
		string(CompressTypeZstd): CompressTypeZstd,
	}
)

//

func (c *Config) Default() {
	if c.Type == "" {
		c.Type = string(EncodeDecoderTypeTaiji)
	}
	if c.Compress == "" {
		c.Compress = string(CompressTypeNone)
	}
	if c.MaxDecodedSize == 0 {
		c.MaxDecodedSize = DefaultMaxDecodedSize
	}
}

func (c *Config) Validate() error {
	if _, ok := EncodeDecoderTypes[strings.ToLower(c.Type)]; !ok {
		return errors.Errorf(
			"unsupported encode decoder type %q, expected one of %q",
			c.Type, reflect.MapSortedKeys(reflect.ValueOf(EncodeDecoderTypes)),
		)
	}
	if _, ok := CompressTypes[strings.ToLower(c.Compress)]; !ok {
		return errors.Errorf(
			"unsupported compression type %q, expected one of %q",
			c.Compress, reflect.MapSortedKeys(reflect.ValueOf(CompressTypes)),
		)
	}
	return nil
}

//

// NewEncodeDecoder builds the transcoding pipeline described by c.
// Decoders of the returned pipeline always validate the final output as
// UTF-8 text.
func NewEncodeDecoder(c *Config) (EncodeDecoder, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	var (
		e      EncodeDecoder
		binary = CompressTypes[strings.ToLower(c.Compress)] != CompressTypeNone
	)
	switch EncodeDecoderTypes[strings.ToLower(c.Type)] {
	case EncodeDecoderTypeTaiji:
		e = &EncodeDecoderTaiji{Binary: binary}
	case EncodeDecoderTypeBase64:
		e = &EncodeDecoderBase64{Binary: binary}
	}

	switch CompressTypes[strings.ToLower(c.Compress)] {
	case CompressTypeZstd:
		e = NewEncodeDecoderZstd(e, c.MaxDecodedSize)
	}

	return e, nil
}
