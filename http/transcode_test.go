package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	msgpack "github.com/vmihailenco/msgpack/v5"

	"github.com/corpix/taiji/encoding"
	"github.com/corpix/taiji/errors"
	"github.com/corpix/taiji/metrics"
)

const (
	testText    = "你好世界!"
	testEncoded = "䷘䷵䷸䷖䷘䷮䷯䷌䷘䷵䷃䷯䷘䷘䷯䷽䷏䷇☯☯"
)

func newTestHandler(t *testing.T, c *Config) (Handler, metrics.RegisterGatherer) {
	c.Default()

	e, err := encoding.NewEncodeDecoder(&encoding.Config{Type: "taiji", Compress: "none"})
	require.Nil(t, err)

	registry := metrics.NewRegistry()
	transcoder, err := NewTranscoder(c, e, metrics.NewTranscode(registry))
	require.Nil(t, err)

	router := NewRouter(c)
	h := New(c,
		WithRouter(router),
		WithTranscoder(transcoder),
		WithHandler(Compose(router, Trace(c.Trace), Recover)),
		WithMetricsHandler(registry, router),
	)
	return h.Handler, registry
}

func serve(h Handler, method string, path string, contentType string, body []byte) *httptest.ResponseRecorder {
	r := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		r.Header.Set(HeaderContentType, contentType)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestTranscodeJson(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	w := serve(h, MethodPost, TranscodePathEncode, MimeApplicationJson, []byte(`{"text":"`+testText+`"}`))
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, MimeApplicationJson, w.Header().Get(HeaderContentType))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestId))

	res := TranscodeResponse{}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, testEncoded, res.Result)

	w = serve(h, MethodPost, TranscodePathDecode, "", []byte(`{"text":"`+res.Result+`"}`))
	require.Equal(t, StatusOk, w.Code)
	res = TranscodeResponse{}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, testText, res.Result)
}

func TestTranscodeJsonErrors(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	samples := []struct {
		text string
		kind encoding.ErrorKind
	}{
		{"䷘䷵䷸", encoding.ErrorKindLength},
		{"䷘䷵䷸A", encoding.ErrorKindInvalidCharacter},
		{encoding.TaijiEncode([]byte{0xff, 0xfe}), encoding.ErrorKindInvalidEncoding},
	}
	for _, sample := range samples {
		t.Run(string(sample.kind), func(t *testing.T) {
			body, err := json.Marshal(&TranscodeRequest{Text: sample.text})
			require.Nil(t, err)

			w := serve(h, MethodPost, TranscodePathDecode, MimeApplicationJson, body)
			assert.Equal(t, StatusBadRequest, w.Code)

			res := TranscodeResponse{}
			require.Nil(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, string(sample.kind), res.Kind)
			assert.NotEmpty(t, res.Error)
			assert.Empty(t, res.Result)
		})
	}

	w := serve(h, MethodPost, TranscodePathDecode, MimeApplicationJson, []byte(`{"text":`))
	assert.Equal(t, StatusBadRequest, w.Code)
}

func TestTranscodeMsgpack(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	body, err := msgpack.Marshal(&TranscodeRequest{Text: testEncoded})
	require.Nil(t, err)

	w := serve(h, MethodPost, TranscodePathDecode, MimeApplicationMsgpack, body)
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, MimeApplicationMsgpack, w.Header().Get(HeaderContentType))

	res := TranscodeResponse{}
	require.Nil(t, msgpack.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, testText, res.Result)
}

func TestTranscodeYaml(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	body, err := yaml.Marshal(&TranscodeRequest{Text: testText})
	require.Nil(t, err)

	w := serve(h, MethodPost, TranscodePathEncode, "application/yaml; charset=utf-8", body)
	require.Equal(t, StatusOk, w.Code)

	res := TranscodeResponse{}
	require.Nil(t, yaml.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, testEncoded, res.Result)
}

func TestTranscodePlain(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	w := serve(h, MethodPost, TranscodePathEncode, MimeTextPlain, []byte("hello world!"))
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, "䷮䷭䷾䷷䷹䷭䷠䷖䷰䷸䷌䷺䷹䷭䷇䷚", w.Body.String())

	w = serve(h, MethodPost, TranscodePathDecode, MimeTextPlain, w.Body.Bytes())
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, "hello world!", w.Body.String())

	w = serve(h, MethodPost, TranscodePathDecode, MimeTextPlain, []byte("\n ䷮䷭䷾䷷䷹䷭䷠䷖䷰䷸䷌䷺䷹䷭䷇䷚\r\n"))
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, "hello world!", w.Body.String())

	w = serve(h, MethodPost, TranscodePathDecode, MimeTextPlain, []byte("hello"))
	assert.Equal(t, StatusBadRequest, w.Code)
}

func TestTranscodeUnsupported(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	w := serve(h, MethodPost, TranscodePathEncode, "application/xml", []byte("<text/>"))
	assert.Equal(t, StatusUnsupportedMediaType, w.Code)

	w = serve(h, MethodGet, TranscodePathEncode, "", nil)
	assert.Equal(t, StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "method GET is not allowed", w.Body.String())

	w = serve(h, MethodPost, "/api/rot13", MimeTextPlain, []byte(testText))
	assert.Equal(t, StatusNotFound, w.Code)
	assert.Equal(t, "not found", w.Body.String())
}

func TestTranscodeBodyLimit(t *testing.T) {
	h, _ := newTestHandler(t, &Config{MaxBodySize: 8})

	w := serve(h, MethodPost, TranscodePathEncode, MimeTextPlain, []byte(strings.Repeat("x", 64)))
	assert.Equal(t, StatusRequestEntityTooLarge, w.Code)

	w = serve(h, MethodPost, TranscodePathEncode, MimeTextPlain, []byte(strings.Repeat("x", 9)))
	assert.Equal(t, StatusRequestEntityTooLarge, w.Code)

	w = serve(h, MethodPost, TranscodePathEncode, MimeTextPlain, []byte("abcdefgh"))
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, encoding.TaijiEncode([]byte("abcdefgh")), w.Body.String())
}

func TestTranscodeBodyReadError(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	r := httptest.NewRequest(MethodPost, TranscodePathEncode, iotest.ErrReader(errors.New("connection reset")))
	r.Header.Set(HeaderContentType, MimeTextPlain)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, StatusBadRequest, w.Code)
	assert.Equal(t, "failed to read request body", w.Body.String())
}

func TestTranscodeQRCode(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	w := serve(h, MethodGet, TranscodePathQRCode+"?text="+url.QueryEscape(testText), "", nil)
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, "image/png", w.Header().Get(HeaderContentType))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))

	w = serve(h, MethodGet, TranscodePathQRCode, "", nil)
	assert.Equal(t, StatusBadRequest, w.Code)
}

func TestIndex(t *testing.T) {
	h, _ := newTestHandler(t, &Config{})

	w := serve(h, MethodGet, TranscodePathIndex, "", nil)
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, MimeTextHtml, w.Header().Get(HeaderContentType))
	assert.Contains(t, w.Body.String(), "<form")

	form := url.Values{"text": {testText}, "operation": {"encode"}}
	w = serve(h, MethodPost, TranscodePathIndex, "application/x-www-form-urlencoded", []byte(form.Encode()))
	require.Equal(t, StatusOk, w.Code)
	assert.Contains(t, w.Body.String(), testEncoded)
	assert.Contains(t, w.Body.String(), "/api/qrcode?text=")

	form = url.Values{"text": {"䷘"}, "operation": {"decode"}}
	w = serve(h, MethodPost, TranscodePathIndex, "application/x-www-form-urlencoded", []byte(form.Encode()))
	assert.Equal(t, StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `class="error"`)

	form = url.Values{"text": {"x"}, "operation": {"rot13"}}
	w = serve(h, MethodPost, TranscodePathIndex, "application/x-www-form-urlencoded", []byte(form.Encode()))
	assert.Equal(t, StatusBadRequest, w.Code)
}

func TestPrefix(t *testing.T) {
	h, _ := newTestHandler(t, &Config{Prefix: "/taiji"})

	w := serve(h, MethodPost, "/taiji"+TranscodePathEncode, MimeTextPlain, []byte(testText))
	require.Equal(t, StatusOk, w.Code)
	assert.Equal(t, testEncoded, w.Body.String())

	w = serve(h, MethodPost, TranscodePathEncode, MimeTextPlain, []byte(testText))
	assert.Equal(t, StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestHandler(t, &Config{Metrics: &MetricsConfig{Enable: true, Token: "secret"}})

	w := serve(h, MethodPost, TranscodePathEncode, MimeTextPlain, []byte(testText))
	require.Equal(t, StatusOk, w.Code)

	w = serve(h, MethodGet, "/metrics", "", nil)
	assert.Equal(t, StatusNotFound, w.Code)
	assert.Equal(t, "not found", w.Body.String())

	r := httptest.NewRequest(MethodGet, "/metrics", nil)
	r.Header.Set(HeaderAuthorization, "Bearer secret")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, StatusOk, w.Code)

	body, err := io.ReadAll(w.Body)
	require.Nil(t, err)
	assert.Contains(t, string(body), `taiji_transcode_total{operation="encode",result="ok"} 1`)
	assert.Contains(t, string(body), "requests_total")
}
