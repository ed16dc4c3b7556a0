package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/tokmark/storage/filesystem"
	"github.com/revelaction/tokmark/storage/sqlite/zombiezen"
)

// importCommand copies a directory corpus into a sqlite corpus database.
func importCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import a directory of document files into a sqlite corpus",
		ArgsUsage: "<fromDir> <toDb>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("usage: import <fromDir> <toDb>")
			}
			from, to := c.Args().Get(0), c.Args().Get(1)

			src, err := filesystem.NewDocStore(from)
			if err != nil {
				return err
			}

			pool, err := zombiezen.NewPool(to)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := zombiezen.CreateSchemas(pool, "docs.sql"); err != nil {
				return err
			}
			dst := zombiezen.NewDocStore(pool)

			docs, err := src.List("")
			if err != nil {
				return err
			}

			uiprogress.Start()
			bar := uiprogress.AddBar(len(docs))
			bar.AppendCompleted()
			bar.PrependElapsed()

			count := 0
			for _, meta := range docs {
				doc, err := src.Read(meta.Id)
				if err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
				}
				if err := dst.Write(doc); err != nil {
					uiprogress.Stop()
					return fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
				}
				count++
				bar.Incr()
			}
			uiprogress.Stop()

			fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
			return nil
		},
	}
}
