package encoding

import (
	"bytes"

	"github.com/klauspost/compress/zstd"

	"github.com/corpix/taiji/errors"
)

// EncodeDecoderZstd compresses data before handing it to the wrapped
// EncodeDecoder, which should run in binary mode.
// Decode refuses to inflate more than MaxDecodedSize bytes.
type EncodeDecoderZstd struct {
	EncodeDecoder
	Binary         bool
	MaxDecodedSize uint64
}

var _ EncodeDecoder = &EncodeDecoderZstd{}

//

func (e *EncodeDecoderZstd) Encode(buf []byte) ([]byte, error) {
	w := bytes.NewBuffer(nil)
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return nil, err
	}
	_, err = enc.Write(buf)
	if err != nil {
		enc.Close()
		return nil, errors.Wrap(err, "failed to compress")
	}
	err = enc.Close()
	if err != nil {
		return nil, errors.Wrap(err, "failed to compress")
	}
	return e.EncodeDecoder.Encode(w.Bytes())
}

func (e *EncodeDecoderZstd) Decode(buf []byte) ([]byte, error) {
	buf, err := e.EncodeDecoder.Decode(buf)
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 {
		return []byte{}, nil
	}

	limit := e.MaxDecodedSize
	if limit == 0 {
		limit = DefaultMaxDecodedSize
	}
	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(limit),
	)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	decoded, err := decoder.DecodeAll(buf, nil)
	switch {
	case errors.Is(err, zstd.ErrDecoderSizeExceeded),
		errors.Is(err, zstd.ErrWindowSizeExceeded),
		uint64(len(decoded)) > limit:
		return nil, &SizeError{Limit: limit}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to decompress")
	}

	if !e.Binary {
		err = ValidateText(decoded)
		if err != nil {
			return nil, err
		}
	}
	return decoded, nil
}

func NewEncodeDecoderZstd(e EncodeDecoder, maxDecodedSize uint64) *EncodeDecoderZstd {
	return &EncodeDecoderZstd{
		EncodeDecoder:  e,
		MaxDecodedSize: maxDecodedSize,
	}
}
