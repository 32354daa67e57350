package cli

import (
	"fmt"
	"io"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/corpix/taiji/config"
	"github.com/corpix/taiji/encoding"
	"github.com/corpix/taiji/errors"
	"github.com/corpix/taiji/http"
	"github.com/corpix/taiji/log"
	"github.com/corpix/taiji/metrics"
	"github.com/corpix/taiji/qrcode"
)

type (
	BoolFlag         = cli.BoolFlag
	Command          = cli.Command
	Commands         = cli.Commands
	Context          = cli.Context
	DurationFlag     = cli.DurationFlag
	Flag             = cli.Flag
	Flags            = []Flag
	Float64Flag      = cli.Float64Flag
	Float64SliceFlag = cli.Float64SliceFlag
	GenericFlag      = cli.GenericFlag
	Int64Flag        = cli.Int64Flag
	Int64SliceFlag   = cli.Int64SliceFlag
	IntFlag          = cli.IntFlag
	IntSliceFlag     = cli.IntSliceFlag
	PathFlag         = cli.PathFlag
	StringFlag       = cli.StringFlag
	StringSliceFlag  = cli.StringSliceFlag
	TimestampFlag    = cli.TimestampFlag
	Uint64Flag       = cli.Uint64Flag
	UintFlag         = cli.UintFlag

	App        = cli.App
	BeforeFunc = cli.BeforeFunc
	Action     = func(*Context) error

	Config          = config.Config
	ConfigContainer = config.Container

	Cli struct {
		*App
		Config *ConfigContainer
	}

	Option func(*Cli)
)

//

func WithComposition(options ...Option) Option {
	return func(c *Cli) {
		for _, option := range options {
			option(c)
		}
	}
}

//

func WithName(name string) Option {
	return func(c *Cli) {
		c.Name = name
	}
}

func WithDescription(desc string) Option {
	return func(c *Cli) {
		c.Description = desc
	}
}

func WithUsage(usage string) Option {
	return func(c *Cli) {
		c.Usage = usage
	}
}

func WithVersion(version string) Option {
	return func(c *Cli) {
		c.Version = version
	}
}

func WithConfig(cfg Config) Option {
	return func(c *Cli) {
		c.Config = config.New(cfg)
	}
}

//

func WithFlags(flags Flags) Option {
	return func(c *Cli) {
		c.Flags = append(c.Flags, flags...)
	}
}

func WithCommands(commands Commands) Option {
	return func(c *Cli) {
		c.Commands = append(c.Commands, commands...)
	}
}

//

func ActionChain(current Action, next Action) Action {
	if current != nil {
		return func(ctx *Context) error {
			err := current(ctx)
			if err != nil {
				return err
			}
			return next(ctx)
		}
	}
	return next
}

func WithBefore(fn BeforeFunc) Option {
	return func(c *Cli) {
		c.Before = ActionChain(c.Before, fn)
	}
}

//

func ConfigFromContext(ctx *Context, cfg Config, unmarshaler config.Unmarshaler) error {
	paths := ctx.StringSlice("config")
	sources := make([]config.Option, len(paths))

	for n, path := range paths {
		sources[n] = config.FromFile(path, unmarshaler)
	}

	_, err := config.Load(cfg, sources...)
	if err != nil {
		return err
	}
	return nil
}

func WithConfigTools(cfg Config, unmarshaler config.Unmarshaler, marshaler config.Marshaler) Option {
	return WithComposition(
		WithConfig(cfg),
		WithBefore(func(ctx *Context) error {
			err := ConfigFromContext(ctx, cfg, unmarshaler)
			if err != nil {
				return err
			}

			return config.Postprocess(
				cfg,
				config.WithDefaults(),
				config.WithExpansion(),
				config.WithValidation(),
			)
		}),
		func(c *Cli) {
			c.Flags = append(c.Flags, &StringSliceFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to application configuration file, may be repeated",
			})

			commands := Commands{}

			if _, ok := c.Config.Unwrap().(config.Defaultable); ok {
				commands = append(commands, &Command{
					Name:    "show-default",
					Aliases: []string{"sd"},
					Usage:   "Show default configuration",
					Action: func(ctx *Context) error {
						defaults := c.Config.EmptyClone()
						err := config.Postprocess(
							defaults,
							config.WithDefaults(),
						)
						if err != nil {
							return err
						}
						return config.ToWriter(ctx.App.Writer, marshaler)(defaults)
					},
				})
			}

			if _, ok := c.Config.Unwrap().(config.Validatable); ok {
				commands = append(commands, &Command{
					Name:    "validate",
					Aliases: []string{"v"},
					Usage:   "Validate configuration and exit",
					Action: func(ctx *Context) error {
						err := ConfigFromContext(ctx, cfg, unmarshaler)
						if err != nil {
							return err
						}

						err = config.Postprocess(
							cfg,
							config.WithDefaults(),
							config.WithExpansion(),
							config.WithValidation(),
						)
						if err != nil {
							return err
						}

						fmt.Fprintln(ctx.App.Writer, "configuration is valid")

						return nil
					},
				})
			}

			commands = append(commands, &Command{
				Name:    "show",
				Aliases: []string{"s"},
				Usage:   "Show current configuration",
				Action: func(ctx *Context) error {
					err := ConfigFromContext(ctx, cfg, unmarshaler)
					if err != nil {
						return err
					}

					err = config.Postprocess(
						cfg,
						config.WithDefaults(),
						config.WithExpansion(),
					)
					if err != nil {
						return err
					}
					return config.ToWriter(ctx.App.Writer, marshaler)(cfg)
				},
			})

			c.Commands = append(c.Commands, &Command{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Configuration tools",
				Subcommands: commands,
			})
		},
	)
}

func WithLogTools(cfg func() *log.Config, options ...log.Option) Option {
	return WithComposition(
		WithFlags(Flags{
			&StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "logging level (debug, info, warn, error)",
			},
		}),
		func(c *Cli) {
			WithBefore(func(ctx *Context) error {
				level := ctx.String("log-level")
				if level == "" {
					level = cfg().Level
				}

				return log.Init(level, options...)
			})(c)
		},
	)
}

// ReadInput returns command arguments joined by a space,
// or the whole application reader when there are no arguments.
func ReadInput(ctx *Context) ([]byte, error) {
	if ctx.NArg() > 0 {
		return []byte(strings.Join(ctx.Args().Slice(), " ")), nil
	}
	buf, err := io.ReadAll(ctx.App.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read input")
	}
	return buf, nil
}

func WithTranscodeTools(cfg func() *encoding.Config) Option {
	return WithCommands(Commands{
		&Command{
			Name:      "encode",
			Aliases:   []string{"e"},
			Usage:     "Encode text into taiji symbols",
			ArgsUsage: "[text...]",
			Flags: Flags{
				&PathFlag{
					Name:    "qrcode",
					Aliases: []string{"q"},
					Usage:   "also write a PNG QR code of the encoded text to this path",
				},
				&IntFlag{
					Name:  "qrcode-size",
					Usage: "QR code image size in pixels",
					Value: 256,
				},
				&StringFlag{
					Name:  "qrcode-level",
					Usage: "QR code recovery level (low, medium, high, highest)",
					Value: "medium",
				},
			},
			Action: func(ctx *Context) error {
				input, err := ReadInput(ctx)
				if err != nil {
					return err
				}
				e, err := encoding.NewEncodeDecoder(cfg())
				if err != nil {
					return err
				}

				encoded, err := e.Encode(input)
				if err != nil {
					return errors.Wrap(err, "failed to encode")
				}
				log.Debug().
					Int("input", len(input)).
					Int("output", len(encoded)).
					Msg("encoded")

				if path := ctx.Path("qrcode"); path != "" {
					err = qrcode.WriteFile(&qrcode.Config{
						Size:  ctx.Int("qrcode-size"),
						Level: ctx.String("qrcode-level"),
					}, string(encoded), path)
					if err != nil {
						return err
					}
					log.Info().Str("path", path).Msg("wrote qrcode")
				}

				_, err = fmt.Fprintln(ctx.App.Writer, string(encoded))
				return err
			},
		},
		&Command{
			Name:      "decode",
			Aliases:   []string{"d"},
			Usage:     "Decode taiji symbols back into text",
			ArgsUsage: "[symbols]",
			Action: func(ctx *Context) error {
				input, err := ReadInput(ctx)
				if err != nil {
					return err
				}
				e, err := encoding.NewEncodeDecoder(cfg())
				if err != nil {
					return err
				}

				decoded, err := e.Decode([]byte(strings.TrimSpace(string(input))))
				if err != nil {
					log.Debug().
						Err(err).
						Str("kind", string(encoding.Kind(err))).
						Msg("failed to decode")
					return errors.Wrap(err, "failed to decode")
				}

				_, err = fmt.Fprintln(ctx.App.Writer, string(decoded))
				return err
			},
		},
	})
}

func WithHttpTools(cfg func() *http.Config, encodingCfg func() *encoding.Config) Option {
	return func(c *Cli) {
		c.Commands = append(c.Commands, &Command{
			Name:    "http",
			Aliases: []string{"ht"},
			Usage:   "HTTP server tools",
			Flags: Flags{
				&StringFlag{
					Name:    "address",
					Aliases: []string{"a"},
					Usage:   "address:port to listen on",
				},
			},
			Subcommands: Commands{
				&Command{
					Name:    "serve",
					Aliases: []string{"s"},
					Usage:   "Run server listener",
					Action: func(ctx *Context) error {
						conf := cfg()
						address := ctx.String("address")
						if address == "" {
							address = conf.Address
						}

						e, err := encoding.NewEncodeDecoder(encodingCfg())
						if err != nil {
							return err
						}
						transcoder, err := http.NewTranscoder(
							conf, e,
							metrics.NewTranscode(metrics.Default),
						)
						if err != nil {
							return err
						}

						router := http.NewRouter(conf)
						return http.New(
							conf,
							http.WithAddress(address),
							http.WithRouter(router),
							http.WithTranscoder(transcoder),
							http.WithHandler(http.Compose(
								router,
								http.Trace(conf.Trace),
								http.Recover,
							)),
							http.WithMetricsHandler(metrics.Default, router),
						).ListenAndServe()
					},
				},
			},
		})
	}
}

func New(options ...Option) *Cli {
	c := &Cli{
		App: &App{},
	}

	for _, option := range options {
		option(c)
	}

	return c
}
