package explore

import (
	"fmt"
	"io"
	"sync"

	"github.com/revelaction/tokmark/hover"
	"github.com/revelaction/tokmark/lookup"
)

// TermDisplay prints popup updates to the terminal, standing in for the
// page's tooltip panel. Lookup results may arrive from another goroutine
// after the popup itself.
type TermDisplay struct {
	mu  sync.Mutex
	Out io.Writer
}

func NewTermDisplay(out io.Writer) *TermDisplay {
	return &TermDisplay{Out: out}
}

func (d *TermDisplay) ShowPopup(p hover.Popup) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p.Lemma != "" {
		fmt.Fprintf(d.Out, "  🔍 %s\n", p.Lemma)
	}
	if p.Grammar != "" {
		fmt.Fprintf(d.Out, "     %s\n", p.Grammar)
	}
	if p.Detail != "" {
		fmt.Fprintf(d.Out, "     %s\n", p.Detail)
	}
	if p.HasPercent {
		fmt.Fprintf(d.Out, "     %.1f%%\n", p.Percent)
	}
}

func (d *TermDisplay) ShowLocation(li lookup.LocInfo) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if li.Desc != "" {
		fmt.Fprintf(d.Out, "  🌍 %s\n", li.Desc)
	}
	if li.Country != "" {
		fmt.Fprintf(d.Out, "     land: %s\n", li.Country)
	}
	if li.Map != "" {
		fmt.Fprintf(d.Out, "     kort: %s\n", li.Map)
	}
}

func (d *TermDisplay) ShowImage(img lookup.Image) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintf(d.Out, "  🖼  %s (%dx%d)\n", img.URL, img.Width, img.Height)
}

func (d *TermDisplay) HidePopup() {}
