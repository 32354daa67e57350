package config

import (
	"github.com/corpix/revip"

	"github.com/corpix/taiji/encoding"
	"github.com/corpix/taiji/log"
)

type (
	Config              = revip.Config
	Defaultable         = revip.Defaultable
	ErrFileNotFound     = revip.ErrFileNotFound
	ErrMarshal          = revip.ErrMarshal
	ErrPathNotFound     = revip.ErrPathNotFound
	ErrPostprocess      = revip.ErrPostprocess
	ErrUnexpectedKind   = revip.ErrUnexpectedKind
	ErrUnexpectedScheme = revip.ErrUnexpectedScheme
	ErrUnmarshal        = revip.ErrUnmarshal
	Expandable          = revip.Expandable
	Marshaler           = revip.Marshaler
	Option              = revip.SourceOption
	Container           = revip.Container
	Unmarshaler         = revip.Unmarshaler
	Validatable         = revip.Validatable
)

//

// BaseConfig carries the sections every taiji program shares.
type BaseConfig struct {
	Log      *log.Config      `yaml:"log"`
	Encoding *encoding.Config `yaml:"encoding"`
}

func (c *BaseConfig) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
	c.Log.Default()
	if c.Encoding == nil {
		c.Encoding = &encoding.Config{}
	}
	c.Encoding.Default()
}

func (c *BaseConfig) Validate() error {
	err := c.Log.Validate()
	if err != nil {
		return err
	}
	return c.Encoding.Validate()
}

func (c *BaseConfig) LogConfig() *log.Config           { return c.Log }
func (c *BaseConfig) EncodingConfig() *encoding.Config { return c.Encoding }

//

var (
	FromEnviron    = revip.FromEnviron
	FromFile       = revip.FromFile
	FromReader     = revip.FromReader
	FromURL        = revip.FromURL
	Load           = revip.Load
	New            = revip.New
	Postprocess    = revip.Postprocess
	ToFile         = revip.ToFile
	ToURL          = revip.ToURL
	ToWriter       = revip.ToWriter
	WithDefaults   = revip.WithDefaults
	WithExpansion  = revip.WithExpansion
	WithValidation = revip.WithValidation

	JsonMarshaler   = revip.JsonMarshaler
	JsonUnmarshaler = revip.JsonUnmarshaler
	YamlMarshaler   = revip.YamlMarshaler
	YamlUnmarshaler = revip.YamlUnmarshaler
	TomlMarshaler   = revip.TomlMarshaler
	TomlUnmarshaler = revip.TomlUnmarshaler
)
