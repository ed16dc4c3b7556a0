// Package spacing reconstructs surface typography for a token sequence that
// carries no explicit spacing information.
package spacing

import (
	"strings"

	"github.com/revelaction/tokmark/token"
)

// Class is the typographic spacing class of a token.
type Class int

const (
	// Left is opening punctuation that hugs the following token.
	Left Class = iota
	// Center punctuation is spaced on both sides.
	Center
	// Right is closing punctuation that hugs the preceding token.
	Right
	// None is tight punctuation with no space on either side.
	None
	// Word is any non-punctuation token.
	Word
)

func (c Class) String() string {
	return [...]string{"left", "center", "right", "none", "word"}[c]
}

const (
	leftSet  = "([{„«#$€<"
	rightSet = ".,:;)]}!%?“»”’…°>"
	noneSet  = "—–-/'~‘\\"
)

// Classify maps a token to its spacing class. Classification is a pure
// function of the token kind and text.
func Classify(t token.Token) Class {
	if t.Kind != token.Punctuation {
		return Word
	}
	r := []rune(t.Text)
	if len(r) != 1 {
		return Center
	}
	switch {
	case strings.ContainsRune(leftSet, r[0]):
		return Left
	case strings.ContainsRune(rightSet, r[0]):
		return Right
	case strings.ContainsRune(noneSet, r[0]):
		return None
	default:
		return Center
	}
}

// spaceBefore[prev][cur] is true when a space separates a token of class cur
// from a preceding token of class prev.
//
//	prev\cur  Left Center Right None Word
//	Left       .     x     .     .    .
//	Center     x     x     x     x    x
//	Right      x     x     .     .    x
//	None       .     x     .     .    .
//	Word       x     x     .     .    x
var spaceBefore = [5][5]bool{
	Left:   {false, true, false, false, false},
	Center: {true, true, true, true, true},
	Right:  {true, true, false, false, true},
	None:   {false, true, false, false, false},
	Word:   {true, true, false, false, true},
}

// ShouldInsertSpace reports whether a separating space is emitted before a
// token of class cur following a token of class prev. The first token of a
// sentence is never preceded by a space.
func ShouldInsertSpace(prev, cur Class, first bool) bool {
	if first {
		return false
	}
	return spaceBefore[prev][cur]
}
