package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// Build information, set at link time.
var (
	BuildTag    = "dev"
	BuildCommit = "unknown"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fmt.Fprintf(ui.Err, "tokmark: %v\n", err)
		os.Exit(1)
	}
}

func newApp(ui UI) *cli.App {
	pool := &Pool{}

	return &cli.App{
		Name:  "tokmark",
		Usage: "render annotated token streams as interactive markup",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "corpus",
				Aliases: []string{"c"},
				Value:   "docs",
				Usage:   "directory of token-stream document files",
			},
			&cli.StringFlag{
				Name:  "db",
				Usage: "sqlite database holding the name registry",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Value: "https://greynir.is",
				Usage: "address of the remote lookup service",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "warn",
				Usage: "zerolog level: trace, debug, info, warn, error",
			},
		},
		Before: func(c *cli.Context) error {
			lvl, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", c.String("log-level"), err)
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: ui.Err}).
				With().Timestamp().Logger().Level(lvl)
			c.Context = log.WithContext(c.Context)
			return nil
		},
		After: func(c *cli.Context) error {
			return pool.Close()
		},
		Commands: []*cli.Command{
			renderCommand(ui, pool),
			docCommand(ui, pool),
			statCommand(ui, pool),
			namesCommand(ui, pool),
			importCommand(ui),
			exploreCommand(ui, pool),
			versionCommand(ui),
		},
	}
}
