// Package hover reacts to pointer and click events on rendered tokens: it
// assembles popup content from a token's annotations, consults the lookup
// caches for biographic and geographic information, and builds the
// navigation addresses of the click actions.
package hover

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/revelaction/tokmark/lookup"
	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/render"
	"github.com/revelaction/tokmark/token"
)

// Popup is the assembled tooltip content for one hovered token.
type Popup struct {
	// Lemma is the dictionary headword or canonical name.
	Lemma string

	// Grammar is the human-readable grammatical description.
	Grammar string

	// Detail is free-text additional information (entity definition,
	// person title, location description).
	Detail string

	// Percent is set for percentage tokens.
	Percent    float64
	HasPercent bool

	// Class is the style tag of the token.
	Class string
}

// Display receives popup updates. It stands in for the page's tooltip
// panel; asynchronous lookup results arrive through ShowLocation and
// ShowImage after ShowPopup, possibly from another goroutine.
type Display interface {
	ShowPopup(Popup)
	ShowLocation(lookup.LocInfo)
	ShowImage(lookup.Image)
	HidePopup()
}

// Controller wires hover and click events to the token index and the two
// lookup caches. The index is replaced per render through SetResult; the
// caches persist across renders.
type Controller struct {
	index    []token.Token
	registry *register.Registry
	loc      *lookup.LocCache
	img      *lookup.ImageCache
	display  Display
}

func NewController(reg *register.Registry, loc *lookup.LocCache, img *lookup.ImageCache, d Display) *Controller {
	return &Controller{
		registry: reg,
		loc:      loc,
		img:      img,
		display:  d,
	}
}

// SetResult installs the token index of a freshly rendered document,
// invalidating all previous indices.
func (c *Controller) SetResult(res render.Result) {
	c.index = res.Index
}

// Token returns the indexed token backing a rendered element.
func (c *Controller) Token(ix int) (token.Token, bool) {
	if ix < 0 || ix >= len(c.index) {
		return token.Token{}, false
	}
	return c.index[ix], true
}

// HoverIn handles a pointer entering the rendered token at index ix.
// Unknown indices and tokens with no displayable information are silent
// no-ops. Lookups started here supersede any pending ones through the
// caches' coalescing behavior.
func (c *Controller) HoverIn(ctx context.Context, ix int) {
	t, ok := c.Token(ix)
	if !ok {
		return
	}

	p, ok := buildPopup(t, c.registry)
	if !ok {
		// Nothing derivable, e.g. a token of an unparsed sentence.
		return
	}

	locKind, isLoc := t.LocationKind()
	if isLoc {
		// Location words show a location description instead of the
		// grammatical one; the remote lookup refines it.
		p.Grammar = locDescription(locKind)
		p.Detail = ""
	}

	c.display.ShowPopup(p)

	if t.Kind == token.Person {
		name := token.NormalizeName(t.PersonName())
		if strings.Contains(name, " ") {
			c.img.Fetch(ctx, name, lookup.ImageRequest{Name: name, Thumb: true}, func(img lookup.Image) {
				c.display.ShowImage(img)
			})
		}
	}

	if isLoc {
		name := t.Meaning.Lemma
		zerolog.Ctx(ctx).Debug().Str("name", name).Str("kind", locKind).Msg("location lookup")
		c.loc.Fetch(ctx, lookup.LocKey(locKind, name), lookup.LocRequest{Name: name, Kind: locKind}, func(li lookup.LocInfo) {
			c.display.ShowLocation(li)
		})
	}
}

// HoverOut handles the pointer leaving a token: both caches' outstanding
// requests are cancelled unconditionally and the popup is hidden.
// Idempotent; this is the terminal action of a hover session.
func (c *Controller) HoverOut() {
	c.loc.CancelInFlight()
	c.img.CancelInFlight()
	c.display.HidePopup()
}
