package main

import (
	"os"

	"github.com/corpix/taiji/cli"
	"github.com/corpix/taiji/config"
	"github.com/corpix/taiji/di"
	"github.com/corpix/taiji/encoding"
	"github.com/corpix/taiji/http"
	"github.com/corpix/taiji/log"
)

var version = "development"

type Config struct {
	Log      *log.Config      `yaml:"log"`
	Encoding *encoding.Config `yaml:"encoding"`
	Http     *http.Config     `yaml:"http"`
}

func (c *Config) Default() {
	if c.Log == nil {
		c.Log = &log.Config{}
	}
	c.Log.Default()
	if c.Encoding == nil {
		c.Encoding = &encoding.Config{}
	}
	c.Encoding.Default()
	if c.Http == nil {
		c.Http = &http.Config{}
	}
	c.Http.Default()
}

func (c *Config) Validate() error {
	err := c.Log.Validate()
	if err != nil {
		return err
	}
	err = c.Encoding.Validate()
	if err != nil {
		return err
	}
	return c.Http.Validate()
}

func (c *Config) LogConfig() *log.Config           { return c.Log }
func (c *Config) EncodingConfig() *encoding.Config { return c.Encoding }
func (c *Config) HttpConfig() *http.Config         { return c.Http }

//

func main() {
	di.MustProvide(di.Default, func() *Config { return &Config{} })
	di.MustInvoke(di.Default, func(conf *Config) {
		cli.New(
			cli.WithName("taiji"),
			cli.WithUsage("taiji symbol transcoder"),
			cli.WithDescription("Encodes text into base64 re-skinned with I Ching hexagrams and back"),
			cli.WithVersion(version),
			cli.WithConfigTools(
				conf,
				config.YamlUnmarshaler,
				config.YamlMarshaler,
			),
			cli.WithLogTools(conf.LogConfig, log.WithOutput(os.Stderr)),
			cli.WithTranscodeTools(conf.EncodingConfig),
			cli.WithHttpTools(conf.HttpConfig, conf.EncodingConfig),
		).RunAndExitOnError()
	})
}
