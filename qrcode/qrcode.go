package qrcode

import (
	"io"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/corpix/taiji/errors"
	"github.com/corpix/taiji/reflect"
)

type (
	RecoveryLevel = qrcode.RecoveryLevel
	QRCode        = qrcode.QRCode

	Config struct {
		Size  int    `yaml:"size"`
		Level string `yaml:"level"`
	}
)

const (
	LevelLow     = qrcode.Low
	LevelMedium  = qrcode.Medium
	LevelHigh    = qrcode.High
	LevelHighest = qrcode.Highest

	MimeType = "image/png"
)

var Levels = map[string]RecoveryLevel{
	"low":     LevelLow,
	"medium":  LevelMedium,
	"high":    LevelHigh,
	"highest": LevelHighest,
}

func (c *Config) Default() {
	if c.Size == 0 {
		c.Size = 256
	}
	if c.Level == "" {
		c.Level = "medium"
	}
}

func (c *Config) Validate() error {
	if c.Size < 0 {
		return errors.Errorf("qrcode size should be positive, got %d", c.Size)
	}
	if _, ok := Levels[strings.ToLower(c.Level)]; !ok {
		return errors.Errorf(
			"unsupported qrcode recovery level %q, expected one of %q",
			c.Level, reflect.MapSortedKeys(reflect.ValueOf(Levels)),
		)
	}
	return nil
}

//

// New builds a QR code for content.
// Taiji symbols are multi-byte, so content is always stored in byte mode.
func New(c *Config, content string) (*QRCode, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}
	q, err := qrcode.New(content, Levels[strings.ToLower(c.Level)])
	if err != nil {
		return nil, errors.Wrap(err, "failed to build qrcode")
	}
	return q, nil
}

// Encode renders content as PNG image.
func Encode(c *Config, content string) ([]byte, error) {
	q, err := New(c, content)
	if err != nil {
		return nil, err
	}
	return q.PNG(c.Size)
}

func Write(c *Config, content string, w io.Writer) error {
	q, err := New(c, content)
	if err != nil {
		return err
	}
	return q.Write(c.Size, w)
}

func WriteFile(c *Config, content string, path string) error {
	q, err := New(c, content)
	if err != nil {
		return err
	}
	return errors.Wrapf(q.WriteFile(c.Size, path), "failed to write qrcode to %q", path)
}
