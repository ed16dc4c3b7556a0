package stat

import (
	"github.com/revelaction/tokmark/token"
)

type Handler struct {
	stats Stats
}

// Stats holds the token, sentence and parse counts of one or more
// aggregated documents, plus the parser's ambiguity figure when the
// producer supplied one.
type Stats struct {
	Tokens    int
	Sentences int
	Parsed    int
	Ambiguity float64
}

// ParseRatio returns the fraction of sentences that parsed.
func (s Stats) ParseRatio() float64 {
	if s.Sentences == 0 {
		return 0
	}
	return float64(s.Parsed) / float64(s.Sentences)
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	return &Handler{}
}

// Aggregate adds a document's counts. A sentence counts as parsed when no
// token of it carries an error flag.
func (h *Handler) Aggregate(doc token.Document) {
	for _, p := range doc.Paragraphs {
		for _, s := range p {
			h.stats.Sentences++
			h.stats.Tokens += len(s)

			parsed := true
			for _, t := range s {
				if t.Err {
					parsed = false
					break
				}
			}
			if parsed {
				h.stats.Parsed++
			}
		}
	}

	if doc.Stats != nil && doc.Stats.Ambiguity > 0 {
		h.stats.Ambiguity = doc.Stats.Ambiguity
	}
}
