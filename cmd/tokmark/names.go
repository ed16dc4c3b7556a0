package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/render"
)

// namesCommand renders every corpus document through a shared registry and
// prints the aggregated names in icelandic collation order. With --db the
// registry is also persisted.
func namesCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:  "names",
		Usage: "aggregate the person and entity names of the corpus",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "save",
				Usage: "persist the aggregated registry to the --db database",
			},
		},
		Action: func(c *cli.Context) error {
			store, err := newDocRepository(c, pool)
			if err != nil {
				return err
			}

			reg := register.New()
			r := render.NewRenderer()
			r.Registry = reg

			rs, err := newRegistryStore(c, pool)
			if err != nil {
				return err
			}
			if rs != nil {
				r.Titles = rs
			}

			docs, err := store.List("")
			if err != nil {
				return err
			}
			for _, d := range docs {
				doc, err := store.Read(d.Id)
				if err != nil {
					return err
				}
				r.Document(doc)
			}

			for _, e := range reg.Sorted() {
				marker := "👤"
				if e.Kind == register.Entity {
					marker = "🏛"
				}
				if e.Title != "" {
					fmt.Fprintf(ui.Out, "%s %s — %s\n", marker, e.Name, e.Title)
					continue
				}
				fmt.Fprintf(ui.Out, "%s %s\n", marker, e.Name)
			}

			if c.Bool("save") {
				if rs == nil {
					return fmt.Errorf("--save requires --db")
				}
				return rs.SaveRegistry(reg)
			}
			return nil
		},
	}
}
