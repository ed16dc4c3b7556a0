package hover

import (
	"strings"

	"github.com/revelaction/tokmark/register"
	"github.com/revelaction/tokmark/render"
	"github.com/revelaction/tokmark/token"
)

// classDesc maps word classes to their Icelandic descriptions.
var classDesc = map[string]string{
	"kk":     "nafnorð, karlkyn",
	"kvk":    "nafnorð, kvenkyn",
	"hk":     "nafnorð, hvorugkyn",
	"so":     "sagnorð",
	"lo":     "lýsingarorð",
	"ao":     "atviksorð",
	"eo":     "atviksorð",
	"fs":     "forsetning",
	"st":     "samtenging",
	"stt":    "samtenging",
	"fn":     "fornafn",
	"pfn":    "persónufornafn",
	"abfn":   "afturbeygt fornafn",
	"gr":     "greinir",
	"nhm":    "nafnháttarmerki",
	"to":     "töluorð",
	"töl":    "töluorð",
	"uh":     "upphrópun",
	"entity": "sérnafn",
}

// inflectionDesc expands the tags of an inflection string.
var inflectionDesc = map[string]string{
	"ET":  "eintala",
	"FT":  "fleirtala",
	"NF":  "nefnifall",
	"ÞF":  "þolfall",
	"ÞGF": "þágufall",
	"EF":  "eignarfall",
	"KK":  "karlkyn",
	"KVK": "kvenkyn",
	"HK":  "hvorugkyn",
	"NT":  "nútíð",
	"ÞT":  "þátíð",
	"FH":  "framsöguháttur",
	"VH":  "viðtengingarháttur",
	"BH":  "boðháttur",
	"NH":  "nafnháttur",
	"LH":  "lýsingarháttur",
	"MM":  "miðmynd",
	"GM":  "germynd",
	"MST": "miðstig",
	"EST": "efsta stig",
	"gr":  "með greini",
}

// locDesc describes the closed location kinds.
var locDesc = map[string]string{
	token.LocCountry:   "land",
	token.LocPlacename: "örnefni",
	token.LocStreet:    "götuheiti",
}

func locDescription(kind string) string {
	return locDesc[kind]
}

// kindDesc describes the non-word token kinds shown in the popup.
var kindDesc = map[token.Kind]string{
	token.Time:      "tímapunktur",
	token.Date:      "dagsetning",
	token.Year:      "ártal",
	token.Number:    "tala",
	token.TelNo:     "símanúmer",
	token.Percent:   "prósenta",
	token.URL:       "vefslóð",
	token.Ordinal:   "raðtala",
	token.Timestamp: "tímasetning",
	token.Currency:  "gjaldmiðill",
	token.Amount:    "upphæð",
	token.Email:     "netfang",
}

// describeGrammar builds the grammatical description of a word token from
// its class and inflection tags. Unknown tags are skipped.
func describeGrammar(m *token.Meaning) string {
	parts := []string{}
	if d, ok := classDesc[m.Class]; ok {
		parts = append(parts, d)
	} else if m.Class != "" {
		parts = append(parts, m.Class)
	}
	for _, tag := range strings.Split(m.Inflection, "-") {
		if d, ok := inflectionDesc[tag]; ok {
			parts = append(parts, d)
		}
	}
	return strings.Join(parts, ", ")
}

// buildPopup derives the popup fields from a token's annotations. ok is
// false when none of grammar, lemma or detail can be derived, which covers
// tokens of unparsed sentences.
func buildPopup(t token.Token, reg *register.Registry) (Popup, bool) {
	var p Popup

	switch t.Kind {
	case token.Person:
		p.Lemma = token.NormalizeName(t.PersonName())
		p.Grammar = "mannsnafn"
		p.Class = render.ClassPerson
		if reg != nil {
			if e, ok := reg.Get(p.Lemma); ok && e.Kind == register.Name {
				p.Detail = e.Title
			}
		}
		return p, true

	case token.Entity:
		p.Lemma = token.TightenHyphens(token.NormalizeName(t.Text))
		p.Class = render.ClassEntity
		if reg != nil {
			if e, ok := reg.Get(p.Lemma); ok && e.Kind == register.Entity {
				p.Detail = e.Title
			}
		}
		return p, p.Lemma != ""

	case token.Percent:
		p.Grammar = kindDesc[token.Percent]
		p.Lemma = t.Text
		if v, ok := t.NumberValue(); ok {
			p.Percent = v
			p.HasPercent = true
		}
		return p, true

	case token.Word:
		// handled below

	default:
		if d, ok := kindDesc[t.Kind]; ok {
			p.Grammar = d
			p.Lemma = t.Text
			return p, true
		}
		return p, false
	}

	if t.Meaning != nil {
		p.Lemma = t.Meaning.Lemma
		p.Grammar = describeGrammar(t.Meaning)
		p.Class = t.Meaning.Class
		return p, p.Lemma != "" || p.Grammar != ""
	}

	if t.IsProperNameTerminal() {
		p.Lemma = token.TightenHyphens(token.NormalizeName(t.Text))
		p.Grammar = "sérnafn"
		p.Class = render.ClassEntity
		return p, true
	}

	return p, false
}
