package token

import (
	"encoding/json"
	"strings"
)

// Kind is the token kind code emitted by the tokenizer. The wire field `k`
// carries the numeric code; a missing or unrecognized code means Word.
type Kind int

const (
	Punctuation Kind = 1
	Time        Kind = 2
	Date        Kind = 3
	Year        Kind = 4
	Number      Kind = 5
	Word        Kind = 6
	TelNo       Kind = 7
	Percent     Kind = 8
	URL         Kind = 9
	Ordinal     Kind = 10
	Timestamp   Kind = 11
	Currency    Kind = 12
	Amount      Kind = 13
	Person      Kind = 14
	Email       Kind = 15
	Entity      Kind = 16
	Unknown     Kind = 17
)

// Meaning is the dictionary annotation of a word token, the wire `m` 4-tuple.
type Meaning struct {
	Lemma      string
	Class      string // word class (kk, kvk, hk, so, lo, ...)
	Subclass   string // class detail (alm, lönd, göt, borg, örn, ...)
	Inflection string
}

// Token is one annotated unit of a sentence, as produced by the tokenizer.
type Token struct {
	// Text is the original surface string.
	Text string

	Kind Kind

	// Terminal is the grammar terminal the token matched, empty if none.
	Terminal string

	// Meaning is present for tokens with a dictionary match.
	Meaning *Meaning

	// Aux is the kind-dependent auxiliary payload (wire field `v`). For
	// Person tokens it holds the canonical nominative name.
	Aux json.RawMessage

	// Err marks a token flagged by the parser.
	Err bool
}

type wireToken struct {
	X   string          `json:"x"`
	K   int             `json:"k,omitempty"`
	T   string          `json:"t,omitempty"`
	M   []string        `json:"m,omitempty"`
	V   json.RawMessage `json:"v,omitempty"`
	Err int             `json:"err,omitempty"`
}

// UnmarshalJSON decodes the compact wire form. Missing fields degrade
// gracefully: an omitted or unrecognized kind code becomes Word, a missing
// meaning tuple leaves Meaning nil.
func (t *Token) UnmarshalJSON(data []byte) error {
	var w wireToken
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	t.Text = w.X
	t.Kind = Word
	if w.K >= int(Punctuation) && w.K <= int(Unknown) {
		t.Kind = Kind(w.K)
	}
	t.Terminal = w.T
	t.Meaning = nil
	if len(w.M) == 4 {
		t.Meaning = &Meaning{
			Lemma:      w.M[0],
			Class:      w.M[1],
			Subclass:   w.M[2],
			Inflection: w.M[3],
		}
	}
	t.Aux = w.V
	t.Err = w.Err == 1
	return nil
}

// MarshalJSON encodes the compact wire form, omitting defaults the same way
// the producer does (k omitted for Word, err omitted when unset).
func (t Token) MarshalJSON() ([]byte, error) {
	w := wireToken{X: t.Text, T: t.Terminal, V: t.Aux}
	if t.Kind != Word {
		w.K = int(t.Kind)
	}
	if t.Meaning != nil {
		w.M = []string{t.Meaning.Lemma, t.Meaning.Class, t.Meaning.Subclass, t.Meaning.Inflection}
	}
	if t.Err {
		w.Err = 1
	}
	return json.Marshal(w)
}

// PersonName returns the canonical nominative name of a Person token,
// falling back to the surface text when the auxiliary payload is missing.
func (t Token) PersonName() string {
	var name string
	if len(t.Aux) > 0 && json.Unmarshal(t.Aux, &name) == nil && name != "" {
		return name
	}
	return t.Text
}

// NumberValue returns the numeric auxiliary value of Number, Percent,
// Ordinal and Year tokens. The wire form is either a bare number or an
// array whose first element is the number.
func (t Token) NumberValue() (float64, bool) {
	if len(t.Aux) == 0 {
		return 0, false
	}
	var n float64
	if json.Unmarshal(t.Aux, &n) == nil {
		return n, true
	}
	var arr []json.RawMessage
	if json.Unmarshal(t.Aux, &arr) == nil && len(arr) > 0 {
		if json.Unmarshal(arr[0], &n) == nil {
			return n, true
		}
	}
	return 0, false
}

// Location-service kind values for the /locinfo endpoint.
const (
	LocCountry   = "country"
	LocPlacename = "placename"
	LocStreet    = "street"
)

// locSubclass maps the closed set of location word subclasses to the kind
// tag used when querying the location service. Subclasses outside this set
// silently fall through as non-locations.
var locSubclass = map[string]string{
	"lönd": LocCountry,
	"örn":  LocPlacename,
	"göt":  LocStreet,
	"borg": LocPlacename,
}

// LocationKind returns the location-service kind for the token. A token is
// a location iff it carries a meaning whose subclass is in the closed
// location set.
func (t Token) LocationKind() (string, bool) {
	if t.Meaning == nil {
		return "", false
	}
	kind, ok := locSubclass[t.Meaning.Subclass]
	return kind, ok
}

// properNameCategory is the terminal category of proper names that have no
// dictionary entry.
const properNameCategory = "sérnafn"

// IsProperNameTerminal reports whether the token matched a proper-name
// grammar terminal. The category is the first underscore-separated segment
// of the terminal name.
func (t Token) IsProperNameTerminal() bool {
	if t.Terminal == "" {
		return false
	}
	cat, _, _ := strings.Cut(t.Terminal, "_")
	return cat == properNameCategory
}

// TightenHyphens removes the surrounding spaces of stylistic " - "
// separators inside multi-word proper names.
func TightenHyphens(s string) string {
	return strings.ReplaceAll(s, " - ", "-")
}

// NormalizeName collapses runs of whitespace in a display name to single
// spaces.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
