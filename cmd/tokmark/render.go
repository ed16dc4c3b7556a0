package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/render"
)

func renderCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render a document as interactive markup",
		ArgsUsage: "<docId>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "emit the markup and token index as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("usage: render <docId>")
			}
			docId, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("not a document id: %s", c.Args().First())
			}

			store, err := newDocRepository(c, pool)
			if err != nil {
				return err
			}
			doc, err := store.Read(docId)
			if err != nil {
				return err
			}

			r := render.NewRenderer()
			r.Registry = register.New()
			rs, err := newRegistryStore(c, pool)
			if err != nil {
				return err
			}
			if rs != nil {
				r.Titles = rs
			}

			res := r.Document(doc)

			if c.Bool("json") {
				return render.NewJSONRenderer(ui.Out).Render(res)
			}
			_, err = fmt.Fprintln(ui.Out, res.HTML)
			return err
		},
	}
}
