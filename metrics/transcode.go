package metrics

import (
	"github.com/corpix/taiji/encoding"
)

const (
	OperationEncode = "encode"
	OperationDecode = "decode"

	ResultOk    = "ok"
	ResultError = "error"
)

// Transcode tracks encode/decode calls by outcome and input size.
type Transcode struct {
	Total *CounterVec
	Size  *HistogramVec
}

func (m *Transcode) Observe(operation string, size int, err error) {
	result := ResultOk
	if err != nil {
		result = string(encoding.Kind(err))
		if result == "" {
			result = ResultError
		}
	}

	m.Total.WithLabelValues(operation, result).Inc()
	m.Size.WithLabelValues(operation).Observe(float64(size))
}

func NewTranscode(r Registerer) *Transcode {
	m := &Transcode{
		Total: NewCounterVec(CounterOpts{
			Namespace: "taiji",
			Name:      "transcode_total",
			Help:      "Total number of transcoding operations by result.",
		}, []string{"operation", "result"}),
		Size: NewHistogramVec(HistogramOpts{
			Namespace: "taiji",
			Name:      "transcode_input_size_bytes",
			Help:      "Size of transcoding input in bytes.",
			Buckets:   ExponentialBuckets(16, 4, 8),
		}, []string{"operation"}),
	}
	r.MustRegister(m.Total, m.Size)
	return m
}
