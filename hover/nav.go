package hover

import (
	"net/url"

	"github.com/revelaction/tokmark/token"
)

// Navigation targets of the click actions. The browser click handlers stop
// event propagation, so a token click never doubles as a sentence click;
// here the caller picks exactly one handler per click.

// SentenceURL returns the sentence-parse view address for the raw text of a
// clicked sentence.
func SentenceURL(text string) string {
	return "/treegrid?txt=" + url.QueryEscape(text)
}

func queryURL(q string) string {
	return "/?f=q&q=" + url.QueryEscape(q)
}

// PersonURL returns the person-query address for a clicked person token.
// The token's canonical nominative name is preferred over the displayed
// (possibly inflected) text, and a registry reference resolves a bare
// surname to its full name.
func (c *Controller) PersonURL(ix int, displayText string) string {
	name := token.NormalizeName(displayText)
	if t, ok := c.Token(ix); ok && t.Kind == token.Person {
		name = token.NormalizeName(t.PersonName())
	}
	if c.registry != nil {
		name = c.registry.Resolve(name)
	}
	return queryURL("Hver er " + name + "?")
}

// EntityURL returns the entity-query address for a clicked entity token.
func (c *Controller) EntityURL(ix int, displayText string) string {
	name := token.NormalizeName(displayText)
	if t, ok := c.Token(ix); ok && t.Kind == token.Entity {
		name = token.NormalizeName(t.Text)
	}
	name = token.TightenHyphens(name)
	return queryURL("Hvað er " + name + "?")
}
