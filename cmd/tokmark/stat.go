package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/tokmark/stat"
)

func statCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "token and parse statistics of one document, or of the corpus",
		ArgsUsage: "[docId]",
		Action: func(c *cli.Context) error {
			store, err := newDocRepository(c, pool)
			if err != nil {
				return err
			}

			hdl := stat.NewHandler()

			if c.NArg() > 0 {
				docId, err := strconv.Atoi(c.Args().First())
				if err != nil {
					return fmt.Errorf("not a document id: %s", c.Args().First())
				}
				doc, err := store.Read(docId)
				if err != nil {
					return err
				}
				hdl.Aggregate(doc)
			} else {
				docs, err := store.List("")
				if err != nil {
					return err
				}
				for _, d := range docs {
					doc, err := store.Read(d.Id)
					if err != nil {
						return err
					}
					hdl.Aggregate(doc)
				}
			}

			s := hdl.Get()
			fmt.Fprintf(ui.Out, "Num sentences %d, num tokens %d, parsed %d (%.0f%%)\n",
				s.Sentences, s.Tokens, s.Parsed, s.ParseRatio()*100)
			if s.Ambiguity > 0 {
				fmt.Fprintf(ui.Out, "Ambiguity %.2f\n", s.Ambiguity)
			}
			return nil
		},
	}
}
