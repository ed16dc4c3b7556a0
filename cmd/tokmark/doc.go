package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/tokmark/render"
)

func docCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "doc",
		Usage:     "list the corpus documents, or print one as plain text",
		ArgsUsage: "[docId]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "label",
				Usage: "list only documents with a matching label",
			},
		},
		Action: func(c *cli.Context) error {
			store, err := newDocRepository(c, pool)
			if err != nil {
				return err
			}

			if c.NArg() == 0 {
				docs, err := store.List(c.String("label"))
				if err != nil {
					return err
				}
				for _, d := range docs {
					fmt.Fprintf(ui.Out, "📖 %d %s \n", d.Id, d.Title)
				}
				return nil
			}

			docId, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("not a document id: %s", c.Args().First())
			}
			doc, err := store.Read(docId)
			if err != nil {
				return err
			}

			for pi, p := range doc.Paragraphs {
				for si, s := range p {
					fmt.Fprintf(ui.Out, "✍  %d-%d %s\n", pi, si, render.Text(s))
				}
			}
			return nil
		},
	}
}
