package token

import (
	"encoding/json"
	"testing"
)

func TestUnmarshalDefaults(t *testing.T) {
	var tok Token
	if err := json.Unmarshal([]byte(`{"x":"hestur"}`), &tok); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tok.Kind != Word {
		t.Fatalf("omitted kind = %v, want Word", tok.Kind)
	}
	if tok.Meaning != nil {
		t.Fatalf("missing m should leave Meaning nil")
	}
	if tok.Err {
		t.Fatalf("missing err should be false")
	}
}

func TestUnmarshalUnknownKind(t *testing.T) {
	var tok Token
	if err := json.Unmarshal([]byte(`{"x":"?","k":99}`), &tok); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tok.Kind != Word {
		t.Fatalf("unrecognized kind code = %v, want Word", tok.Kind)
	}
}

func TestUnmarshalFull(t *testing.T) {
	raw := `{"x":"Reykjavíkur","k":6,"t":"no_et_ef","m":["Reykjavík","entity","borg","EF"],"err":1}`
	var tok Token
	if err := json.Unmarshal([]byte(raw), &tok); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tok.Kind != Word || tok.Terminal != "no_et_ef" || !tok.Err {
		t.Fatalf("bad decode: %+v", tok)
	}
	if tok.Meaning == nil || tok.Meaning.Lemma != "Reykjavík" || tok.Meaning.Subclass != "borg" {
		t.Fatalf("bad meaning: %+v", tok.Meaning)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	in := Token{
		Text:     "Clinton",
		Kind:     Person,
		Aux:      json.RawMessage(`"Hillary Rodham Clinton"`),
		Terminal: "person_kvk_nf",
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Token
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Kind != Person || out.PersonName() != "Hillary Rodham Clinton" {
		t.Fatalf("round trip lost data: %+v", out)
	}
}

func TestPersonNameFallback(t *testing.T) {
	tok := Token{Text: "Clinton", Kind: Person}
	if got := tok.PersonName(); got != "Clinton" {
		t.Fatalf("PersonName() = %q, want surface text", got)
	}
}

func TestNumberValue(t *testing.T) {
	tok := Token{Kind: Percent, Aux: json.RawMessage(`12.5`)}
	if v, ok := tok.NumberValue(); !ok || v != 12.5 {
		t.Fatalf("NumberValue() = %v, %t", v, ok)
	}
	tok = Token{Kind: Number, Aux: json.RawMessage(`[1234, null, null]`)}
	if v, ok := tok.NumberValue(); !ok || v != 1234 {
		t.Fatalf("NumberValue() = %v, %t", v, ok)
	}
	tok = Token{Kind: Word}
	if _, ok := tok.NumberValue(); ok {
		t.Fatalf("NumberValue() on word should not be ok")
	}
}

func TestLocationKind(t *testing.T) {
	cases := []struct {
		subclass string
		want     string
		ok       bool
	}{
		{"lönd", LocCountry, true},
		{"örn", LocPlacename, true},
		{"göt", LocStreet, true},
		{"borg", LocPlacename, true},
		{"alm", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		tok := Token{Meaning: &Meaning{Subclass: c.subclass}}
		kind, ok := tok.LocationKind()
		if kind != c.want || ok != c.ok {
			t.Errorf("LocationKind(%q) = %q, %t; want %q, %t", c.subclass, kind, ok, c.want, c.ok)
		}
	}
	// no meaning, no location
	if _, ok := (Token{}).LocationKind(); ok {
		t.Errorf("LocationKind() without meaning should be false")
	}
}

func TestIsProperNameTerminal(t *testing.T) {
	if !(Token{Terminal: "sérnafn_nf"}).IsProperNameTerminal() {
		t.Errorf("sérnafn_nf should be a proper-name terminal")
	}
	if !(Token{Terminal: "sérnafn"}).IsProperNameTerminal() {
		t.Errorf("sérnafn should be a proper-name terminal")
	}
	if (Token{Terminal: "no_et_nf"}).IsProperNameTerminal() {
		t.Errorf("no_et_nf is not a proper-name terminal")
	}
	if (Token{}).IsProperNameTerminal() {
		t.Errorf("empty terminal is not a proper-name terminal")
	}
}

func TestDocumentBothForms(t *testing.T) {
	bare := `[[[{"x":"Ég"},{"x":",","k":1}]]]`
	var d Document
	if err := json.Unmarshal([]byte(bare), &d); err != nil {
		t.Fatalf("bare form: %v", err)
	}
	if len(d.Paragraphs) != 1 || len(d.Paragraphs[0]) != 1 || len(d.Paragraphs[0][0]) != 2 {
		t.Fatalf("bad bare decode: %+v", d)
	}

	obj := `{"title":"Frétt","tokens":[[[{"x":"Ég"}]]],"stats":{"num_tokens":1,"num_sentences":1,"num_parsed":1,"ambiguity":1.2}}`
	d = Document{}
	if err := json.Unmarshal([]byte(obj), &d); err != nil {
		t.Fatalf("object form: %v", err)
	}
	if d.Title != "Frétt" || d.Stats == nil || d.Stats.Ambiguity != 1.2 {
		t.Fatalf("bad object decode: %+v", d)
	}
}
