package token

import (
	"bytes"
	"encoding/json"
)

// Sentence is an ordered run of tokens.
type Sentence []Token

// Paragraph is an ordered run of sentences.
type Paragraph []Sentence

// Stats is the read-only statistics object the producer attaches to a
// document.
type Stats struct {
	Tokens    int     `json:"num_tokens"`
	Sentences int     `json:"num_sentences"`
	Parsed    int     `json:"num_parsed"`
	Ambiguity float64 `json:"ambiguity"`
}

// Document is a fully annotated text: paragraphs of sentences of tokens.
type Document struct {
	Id int `json:"id,omitempty"`

	Title string `json:"title,omitempty"`

	Labels []string `json:"labels,omitempty"`

	Paragraphs []Paragraph `json:"tokens"`

	// Stats is present when the producer supplied a statistics object.
	Stats *Stats `json:"stats,omitempty"`
}

type wireDocument Document

// UnmarshalJSON accepts both document forms: the corpus object
// {"title": ..., "tokens": [[[...]]]} and the bare token-stream array
// [[[...]]] delivered by the producer.
func (d *Document) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		d.Title = ""
		d.Labels = nil
		d.Stats = nil
		return json.Unmarshal(data, &d.Paragraphs)
	}
	var w wireDocument
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*d = Document(w)
	return nil
}
