// Package render turns an annotated document into interactive HTML markup
// plus the token index that maps on-screen elements back to their tokens.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/spacing"
	"github.com/revelaction/tokmark/storage"
	"github.com/revelaction/tokmark/token"
)

// Token style classes emitted in the markup.
const (
	ClassPerson   = "person"
	ClassEntity   = "entity"
	ClassNotFound = "nf"
)

// Result is the output of one full render: the markup and the token index
// built alongside it. Element ids of the form "wN" decode to index N.
type Result struct {
	HTML  string
	Index []token.Token
}

// Renderer renders documents. The zero value renders markup only; with a
// Registry set, person and entity names encountered while rendering are
// aggregated, optionally enriched through Titles.
type Renderer struct {
	Registry *register.Registry
	Titles   storage.TitleSource
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Document renders a full document. The token index is rebuilt from scratch:
// indices of a previous render are invalidated. Rendering the same document
// twice produces identical output.
func (r *Renderer) Document(doc token.Document) Result {
	var b strings.Builder
	var index []token.Token

	for _, p := range doc.Paragraphs {
		b.WriteString("<p>")
		for _, s := range p {
			r.sentence(&b, &index, s)
		}
		b.WriteString("</p>")
	}

	return Result{HTML: b.String(), Index: index}
}

func (r *Renderer) sentence(b *strings.Builder, index *[]token.Token, s token.Sentence) {
	hasErr := false
	for _, t := range s {
		if t.Err {
			hasErr = true
			break
		}
	}

	if hasErr {
		b.WriteString(`<span class="sent err">`)
	} else {
		b.WriteString(`<span class="sent parsed">`)
	}

	last := spacing.None
	for i, t := range s {
		cur := spacing.Classify(t)

		// Em-dash always gets a space on both sides, bypassing the
		// spacing table.
		if t.Kind == token.Punctuation && t.Text == "—" {
			b.WriteString(" — ")
			last = cur
			continue
		}

		if spacing.ShouldInsertSpace(last, cur, i == 0) {
			b.WriteByte(' ')
		}

		if t.Kind == token.Punctuation {
			b.WriteString(html.EscapeString(t.Text))
		} else {
			ix := len(*index)
			*index = append(*index, t)
			r.word(b, t, ix, hasErr)
		}
		last = cur
	}
	b.WriteString("</span>")
}

// word renders one annotated token as <i id="wN" class="...">text</i> and
// feeds the name registry.
func (r *Renderer) word(b *strings.Builder, t token.Token, ix int, errSent bool) {
	text := t.Text
	cls := ""

	switch {
	case errSent:
		// No grammatical classification inside a failed parse: none of
		// it is considered reliable. The token keeps only its index id.
	case t.Kind == token.Person:
		cls = ClassPerson
		r.registerPerson(t)
	case t.Kind == token.Entity:
		cls = ClassEntity
		text = token.TightenHyphens(text)
		r.registerEntity(text)
	case t.Meaning != nil:
		cls = t.Meaning.Class
		if t.Meaning.Subclass != "" {
			cls += " " + t.Meaning.Subclass
		}
	case t.IsProperNameTerminal():
		cls = ClassEntity
		text = token.TightenHyphens(text)
	default:
		cls = ClassNotFound
	}

	if cls == "" {
		fmt.Fprintf(b, `<i id="w%d">%s</i>`, ix, html.EscapeString(text))
		return
	}
	fmt.Fprintf(b, `<i id="w%d" class="%s">%s</i>`, ix, cls, html.EscapeString(text))
}

func (r *Renderer) registerPerson(t token.Token) {
	if r.Registry == nil {
		return
	}
	full := token.NormalizeName(t.PersonName())
	if full == "" {
		return
	}
	title := ""
	if r.Titles != nil {
		if s, ok, err := r.Titles.PersonTitle(full); err == nil && ok {
			title = s
		}
	}
	r.Registry.AddName(full, title)

	// Inflected or partial surface forms (a bare surname, say) become
	// reference entries resolving to the full name.
	if surface := token.NormalizeName(t.Text); surface != "" && surface != full {
		r.Registry.AddRef(surface, full)
	}
}

func (r *Renderer) registerEntity(name string) {
	if r.Registry == nil {
		return
	}
	definition := ""
	if r.Titles != nil {
		if s, ok, err := r.Titles.EntityDefinition(name); err == nil && ok {
			definition = s
		}
	}
	r.Registry.AddEntity(name, definition)
}
