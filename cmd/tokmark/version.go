package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func versionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print build information",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(ui.Out, "tokmark version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
