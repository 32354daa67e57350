package http

import (
	"encoding/json"
	"mime"
	"strings"

	"github.com/goccy/go-yaml"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

type Codec struct {
	Marshal   func(interface{}) ([]byte, error)
	Unmarshal func([]byte, interface{}) error
}

var (
	CodecJson    = Codec{Marshal: json.Marshal, Unmarshal: json.Unmarshal}
	CodecMsgpack = Codec{Marshal: msgpack.Marshal, Unmarshal: msgpack.Unmarshal}
	CodecYaml    = Codec{
		Marshal:   func(v interface{}) ([]byte, error) { return yaml.Marshal(v) },
		Unmarshal: func(buf []byte, v interface{}) error { return yaml.Unmarshal(buf, v) },
	}

	Codecs = map[string]Codec{
		MimeApplicationJson:     CodecJson,
		MimeApplicationMsgpack:  CodecMsgpack,
		"application/x-msgpack": CodecMsgpack,
		MimeApplicationYaml:     CodecYaml,
		"application/x-yaml":    CodecYaml,
		"text/yaml":             CodecYaml,
	}
)

// MediaType returns the lowercased media type of a content-type header
// value without parameters, falling back to JSON for empty values.
func MediaType(contentType string) string {
	if contentType == "" {
		return MimeApplicationJson
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}
