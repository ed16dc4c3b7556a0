package render

import (
	"strings"

	"github.com/revelaction/tokmark/spacing"
	"github.com/revelaction/tokmark/token"
)

// Text reconstructs the plain surface text of a sentence using the spacing
// table, without any markup. This is the text handed to the sentence-parse
// view on a sentence click.
func Text(s token.Sentence) string {
	var b strings.Builder
	last := spacing.None
	for i, t := range s {
		cur := spacing.Classify(t)
		if t.Kind == token.Punctuation && t.Text == "—" {
			b.WriteString(" — ")
			last = cur
			continue
		}
		if spacing.ShouldInsertSpace(last, cur, i == 0) {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
		last = cur
	}
	return b.String()
}

// DocumentText reconstructs the plain text of a whole document, sentences
// joined by spaces and paragraphs by blank lines.
func DocumentText(doc token.Document) string {
	var paras []string
	for _, p := range doc.Paragraphs {
		var sents []string
		for _, s := range p {
			sents = append(sents, Text(s))
		}
		paras = append(paras, strings.Join(sents, " "))
	}
	return strings.Join(paras, "\n\n")
}
