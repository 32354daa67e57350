package http

import (
	"bytes"
	"io"

	"github.com/corpix/taiji/encoding"
	"github.com/corpix/taiji/errors"
	"github.com/corpix/taiji/metrics"
	"github.com/corpix/taiji/qrcode"
)

type (
	TranscodeRequest struct {
		Text string `json:"text" msgpack:"text" yaml:"text"`
	}
	TranscodeResponse struct {
		Result string `json:"result,omitempty" msgpack:"result,omitempty" yaml:"result,omitempty"`
		Error  string `json:"error,omitempty" msgpack:"error,omitempty" yaml:"error,omitempty"`
		Kind   string `json:"kind,omitempty" msgpack:"kind,omitempty" yaml:"kind,omitempty"`
	}

	// Transcoder serves encode and decode operations of an EncodeDecoder.
	Transcoder struct {
		Config        *Config
		EncodeDecoder encoding.EncodeDecoder
		Metrics       *metrics.Transcode
		Template      *Template
	}
	transcodeFunc func([]byte) ([]byte, error)
)

const (
	TranscodePathIndex  = "/"
	TranscodePathEncode = "/api/encode"
	TranscodePathDecode = "/api/decode"
	TranscodePathQRCode = "/api/qrcode"
)

func (t *Transcoder) Register(r *Router) {
	r.HandleFunc(TranscodePathIndex, t.HandleIndex).Methods(MethodGet, MethodPost)
	r.HandleFunc(TranscodePathEncode, t.HandleEncode).Methods(MethodPost)
	r.HandleFunc(TranscodePathDecode, t.HandleDecode).Methods(MethodPost)
	r.HandleFunc(TranscodePathQRCode, t.HandleQRCode).Methods(MethodGet)
}

func (t *Transcoder) Encode(buf []byte) ([]byte, error) {
	encoded, err := t.EncodeDecoder.Encode(buf)
	t.Metrics.Observe(metrics.OperationEncode, len(buf), err)
	return encoded, err
}

// Decode ignores surrounding whitespace, the same way the decode command does.
func (t *Transcoder) Decode(buf []byte) ([]byte, error) {
	buf = bytes.TrimSpace(buf)
	decoded, err := t.EncodeDecoder.Decode(buf)
	t.Metrics.Observe(metrics.OperationDecode, len(buf), err)
	return decoded, err
}

//

func (t *Transcoder) HandleEncode(w ResponseWriter, r *Request) {
	t.transcode(w, r, metrics.OperationEncode, t.Encode)
}

func (t *Transcoder) HandleDecode(w ResponseWriter, r *Request) {
	t.transcode(w, r, metrics.OperationDecode, t.Decode)
}

func (t *Transcoder) HandleQRCode(w ResponseWriter, r *Request) {
	l := RequestLogGet(r)

	text, ok := r.URL.Query()["text"]
	if !ok || len(text) == 0 || text[0] == "" {
		writeText(w, StatusBadRequest, "text query parameter is required")
		return
	}

	encoded, err := t.Encode([]byte(text[0]))
	if err != nil {
		l.Error().Err(err).Msg("failed to encode")
		writeText(w, StatusInternalServerError, err.Error())
		return
	}
	image, err := qrcode.Encode(t.Config.QRCode, string(encoded))
	if err != nil {
		l.Warn().Err(err).Msg("failed to render qrcode")
		writeText(w, StatusBadRequest, err.Error())
		return
	}

	w.Header().Set(HeaderContentType, qrcode.MimeType)
	w.WriteHeader(StatusOk)
	_, _ = w.Write(image)
}

func (t *Transcoder) transcode(w ResponseWriter, r *Request, operation string, fn transcodeFunc) {
	l := RequestLogGet(r).With().Str("operation", operation).Logger()

	body, err := io.ReadAll(io.LimitReader(r.Body, t.Config.MaxBodySize+1))
	if err != nil {
		l.Warn().Err(err).Msg("failed to read request body")
		writeText(w, StatusBadRequest, "failed to read request body")
		return
	}
	if int64(len(body)) > t.Config.MaxBodySize {
		l.Warn().Int64("limit", t.Config.MaxBodySize).Msg("request body is too large")
		writeText(w, StatusRequestEntityTooLarge, "request body is too large")
		return
	}

	mediaType := MediaType(r.Header.Get(HeaderContentType))
	if mediaType == MimeTextPlain {
		result, err := fn(body)
		if err != nil {
			l.Warn().Err(err).Str("kind", string(encoding.Kind(err))).Msg("transcoding failed")
			writeText(w, StatusBadRequest, err.Error())
			return
		}
		writeText(w, StatusOk, string(result))
		return
	}

	codec, ok := Codecs[mediaType]
	if !ok {
		writeText(w, StatusUnsupportedMediaType, "unsupported content type "+mediaType)
		return
	}

	req := TranscodeRequest{}
	err = codec.Unmarshal(body, &req)
	if err != nil {
		l.Warn().Err(err).Msg("failed to unmarshal request")
		writeCodec(w, codec, mediaType, StatusBadRequest, &TranscodeResponse{
			Error: errors.Wrap(err, "failed to unmarshal request").Error(),
		})
		return
	}

	result, err := fn([]byte(req.Text))
	if err != nil {
		kind := string(encoding.Kind(err))
		l.Warn().Err(err).Str("kind", kind).Msg("transcoding failed")
		writeCodec(w, codec, mediaType, StatusBadRequest, &TranscodeResponse{
			Error: err.Error(),
			Kind:  kind,
		})
		return
	}

	writeCodec(w, codec, mediaType, StatusOk, &TranscodeResponse{Result: string(result)})
}

//

func writeText(w ResponseWriter, code int, text string) {
	w.Header().Set(HeaderContentType, MimeTextPlain+"; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(text))
}

func writeCodec(w ResponseWriter, codec Codec, mediaType string, code int, res *TranscodeResponse) {
	buf, err := codec.Marshal(res)
	if err != nil {
		panic(errors.Wrap(err, "failed to marshal response"))
	}
	w.Header().Set(HeaderContentType, mediaType)
	w.WriteHeader(code)
	_, _ = w.Write(buf)
}

func NewTranscoder(c *Config, e encoding.EncodeDecoder, m *metrics.Transcode) (*Transcoder, error) {
	t, err := NewIndexTemplate()
	if err != nil {
		return nil, err
	}
	return &Transcoder{
		Config:        c,
		EncodeDecoder: e,
		Metrics:       m,
		Template:      t,
	}, nil
}

func WithTranscoder(t *Transcoder) Option {
	return func(h *Http) { t.Register(h.Router) }
}
