package stat

import (
	"testing"

	"github.com/revelaction/tokmark/token"
)

func TestAggregate(t *testing.T) {
	doc := token.Document{
		Paragraphs: []token.Paragraph{
			{
				{{Text: "Ég"}, {Text: ".", Kind: token.Punctuation}},
				{{Text: "hrglbr", Err: true}},
			},
			{
				{{Text: "Hann"}},
			},
		},
		Stats: &token.Stats{Ambiguity: 1.45},
	}

	h := NewHandler()
	h.Aggregate(doc)

	got := h.Get()
	if got.Sentences != 3 {
		t.Fatalf("Sentences = %d, want 3", got.Sentences)
	}
	if got.Tokens != 4 {
		t.Fatalf("Tokens = %d, want 4", got.Tokens)
	}
	if got.Parsed != 2 {
		t.Fatalf("Parsed = %d, want 2", got.Parsed)
	}
	if got.Ambiguity != 1.45 {
		t.Fatalf("Ambiguity = %v, want 1.45", got.Ambiguity)
	}
	if r := got.ParseRatio(); r < 0.66 || r > 0.67 {
		t.Fatalf("ParseRatio = %v", r)
	}
}

func TestAggregateEmpty(t *testing.T) {
	h := NewHandler()
	h.Aggregate(token.Document{})
	if got := h.Get(); got.Sentences != 0 || got.ParseRatio() != 0 {
		t.Fatalf("empty aggregate = %+v", got)
	}
}
