package http

import (
	_ "embed"

	"github.com/corpix/taiji/errors"
	"github.com/corpix/taiji/metrics"
	"github.com/corpix/taiji/template"
)

type Template = template.Template

const (
	TemplateContextKeyRequest   template.ContextKey = "request"
	TemplateContextKeyPrefix    template.ContextKey = "prefix"
	TemplateContextKeyOperation template.ContextKey = "operation"
	TemplateContextKeyText      template.ContextKey = "text"
	TemplateContextKeyResult    template.ContextKey = "result"
	TemplateContextKeyError     template.ContextKey = "error"
)

//go:embed index.html
var TemplateIndex string

func NewTemplateContext(r *Request) template.Context {
	return template.NewContext().
		With(TemplateContextKeyRequest, r)
}

func NewIndexTemplate() (*Template, error) {
	t, err := template.Parse("index", TemplateIndex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse index template")
	}
	return t, nil
}

//

func (t *Transcoder) HandleIndex(w ResponseWriter, r *Request) {
	var (
		ctx  = NewTemplateContext(r).With(TemplateContextKeyPrefix, t.Config.Prefix)
		code = StatusOk
	)

	if r.Method == MethodPost {
		r.Body = MaxBytesReader(w, r.Body, t.Config.MaxBodySize)
		err := r.ParseForm()
		if err != nil {
			writeText(w, StatusBadRequest, "failed to parse form")
			return
		}

		var (
			text      = r.PostForm.Get("text")
			operation = r.PostForm.Get("operation")
			result    []byte
		)
		switch operation {
		case metrics.OperationEncode:
			result, err = t.Encode([]byte(text))
		case metrics.OperationDecode:
			result, err = t.Decode([]byte(text))
		default:
			err = errors.Errorf("unsupported operation %q", operation)
		}

		ctx.
			With(TemplateContextKeyOperation, operation).
			With(TemplateContextKeyText, text)
		if err != nil {
			code = StatusBadRequest
			ctx.With(TemplateContextKeyError, err.Error())
		} else {
			ctx.With(TemplateContextKeyResult, string(result))
		}
	}

	w.Header().Set(HeaderContentType, MimeTextHtml)
	w.WriteHeader(code)
	err := t.Template.Execute(w, ctx)
	if err != nil {
		panic(err)
	}
}
