package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/tokmark/token"
)

// JSONRenderer writes a render Result as JSON to a writer: the markup string
// plus the token index in wire form.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type jsonResult struct {
	HTML  string        `json:"html"`
	Index []token.Token `json:"index"`
}

// Render serializes the result as a JSON object.
func (r *JSONRenderer) Render(res Result) error {
	return json.NewEncoder(r.W).Encode(jsonResult{HTML: res.HTML, Index: res.Index})
}
