package http

import (
	"net/http"

	"github.com/corpix/taiji/errors"
	"github.com/corpix/taiji/log"
	"github.com/corpix/taiji/qrcode"
)

type (
	Option         func(*Http)
	Handler        = http.Handler
	HandlerFunc    = http.HandlerFunc
	Middleware     = func(Handler) Handler
	Request        = http.Request
	ResponseWriter = http.ResponseWriter
	Response       = http.Response
	Server         = http.Server
	ContextKey     uint8

	Config struct {
		Address     string         `yaml:"address,omitempty"`
		Prefix      string         `yaml:"prefix,omitempty"`
		MaxBodySize int64          `yaml:"max-body-size,omitempty"`
		Metrics     *MetricsConfig `yaml:"metrics,omitempty"`
		Trace       *TraceConfig   `yaml:"trace,omitempty"`
		QRCode      *qrcode.Config `yaml:"qrcode,omitempty"`
	}
	Http struct {
		Config  *Config
		Address string
		Router  *Router
		Handler Handler
	}
)

const (
	MethodGet     = http.MethodGet
	MethodHead    = http.MethodHead
	MethodPost    = http.MethodPost
	MethodPut     = http.MethodPut
	MethodPatch   = http.MethodPatch
	MethodDelete  = http.MethodDelete
	MethodConnect = http.MethodConnect
	MethodOptions = http.MethodOptions
	MethodTrace   = http.MethodTrace

	StatusOk                    = http.StatusOK
	StatusBadRequest            = http.StatusBadRequest
	StatusNotFound              = http.StatusNotFound
	StatusMethodNotAllowed      = http.StatusMethodNotAllowed
	StatusRequestEntityTooLarge = http.StatusRequestEntityTooLarge
	StatusUnsupportedMediaType  = http.StatusUnsupportedMediaType
	StatusInternalServerError   = http.StatusInternalServerError

	HeaderRequestId     = "x-request-id"
	HeaderAuthorization = "authorization"
	HeaderContentType   = "content-type"

	MimeTextHtml           = "text/html; charset=utf-8"
	MimeTextPlain          = "text/plain"
	MimeApplicationJson    = "application/json"
	MimeApplicationMsgpack = "application/msgpack"
	MimeApplicationYaml    = "application/yaml"

	AuthTokenTypeBearer = "bearer"

	DefaultMaxBodySize = 1 << 20
)

var (
	MaxBytesReader = http.MaxBytesReader
)

func (c *Config) Default() {
	if c.Address == "" {
		c.Address = "127.0.0.1:8080"
	}
	if c.MaxBodySize == 0 {
		c.MaxBodySize = DefaultMaxBodySize
	}
	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	c.Metrics.Default()
	if c.Trace == nil {
		c.Trace = &TraceConfig{}
	}
	c.Trace.Default()
	if c.QRCode == nil {
		c.QRCode = &qrcode.Config{}
	}
	c.QRCode.Default()

	//

	if c.Metrics.Enable {
		c.Trace.SkipPaths[c.Prefix+c.Metrics.Path] = struct{}{}
	}
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("address should not be empty")
	}
	if c.MaxBodySize < 0 {
		return errors.Errorf("max-body-size should be positive, got %d", c.MaxBodySize)
	}
	return nil
}

//

// Compose wraps h into middleware, the first middleware becomes the outermost.
func Compose(h Handler, middleware ...Middleware) Handler {
	for n := len(middleware) - 1; n >= 0; n-- {
		h = middleware[n](h)
	}
	return h
}

func WithAddress(addr string) Option {
	return func(h *Http) { h.Address = addr }
}

func WithRouter(r *Router) Option {
	return func(h *Http) {
		h.Router = r
		if h.Handler == nil {
			h.Handler = r
		}
	}
}

func WithHandler(handler Handler) Option {
	return func(h *Http) { h.Handler = handler }
}

func (h *Http) ListenAndServe() error {
	if h.Address == "" {
		return errors.New("no address was defined for http server to listen on (use WithAddress Option)")
	}
	if h.Handler == nil {
		return errors.New("no handler assigned to the server (use WithRouter or WithHandler Option)")
	}
	log.Info().Str("address", h.Address).Msg("starting http server")
	return http.ListenAndServe(h.Address, h.Handler)
}

func New(c *Config, options ...Option) *Http {
	h := &Http{
		Config:  c,
		Address: c.Address,
	}
	for _, option := range options {
		option(h)
	}

	return h
}
