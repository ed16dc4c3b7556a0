package main

import (
	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/tokmark/explore"
	"github.com/revelaction/tokmark/hover"
	"github.com/revelaction/tokmark/lookup"
	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/render"
	"github.com/revelaction/tokmark/storage"
)

func exploreCommand(ui UI, pool *Pool) *cli.Command {
	return &cli.Command{
		Name:  "explore",
		Usage: "interactive session: render documents, hover and click tokens",
		Action: func(c *cli.Context) error {
			store, err := newDocRepository(c, pool)
			if err != nil {
				return err
			}
			if err := preload(store); err != nil {
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

			client := lookup.NewClient(c.String("base-url"))
			locs, err := lookup.NewLocCache(client, lookup.DefaultSize)
			if err != nil {
				return err
			}
			imgs, err := lookup.NewImageCache(client, lookup.DefaultSize)
			if err != nil {
				return err
			}

			ctrl := hover.NewController(reg, locs, imgs, explore.NewTermDisplay(ui.Out))

			hdl := explore.NewHandler(store, r, ctrl)
			return hdl.Run(c.Context)
		},
	}
}

// preload reads the whole corpus into memory behind a progress bar, so the
// session never blocks on disk. Repositories without eager loading are
// served on demand instead.
func preload(repo storage.DocRepository) error {
	store, ok := repo.(storage.Preloader)
	if !ok {
		return nil
	}

	docs, err := repo.List("")
	if err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	name := ""
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return name
	})

	err = store.Preload(func(current, total int, n string) {
		name = n
		bar.Incr()
	})

	uiprogress.Stop()
	return err
}
