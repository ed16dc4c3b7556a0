package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedExcludesRefs(t *testing.T) {
	r := New()
	r.AddName("Hillary Rodham Clinton", "forsetaframbjóðandi")
	r.AddRef("Clinton", "Hillary Rodham Clinton")
	r.AddEntity("UNESCO", "menningarmálastofnun")

	got := r.Sorted()
	assert.Len(t, got, 2)
	for _, e := range got {
		assert.NotEqual(t, Ref, e.Kind)
	}
}

func TestResolveRef(t *testing.T) {
	r := New()
	r.AddName("Hillary Rodham Clinton", "")
	r.AddRef("Clinton", "Hillary Rodham Clinton")

	assert.Equal(t, "Hillary Rodham Clinton", r.Resolve("Clinton"))
	assert.Equal(t, "Hillary Rodham Clinton", r.Resolve("Hillary Rodham Clinton"))
	assert.Equal(t, "Obama", r.Resolve("Obama"))
	// whitespace is normalized before lookup
	assert.Equal(t, "Hillary Rodham Clinton", r.Resolve("  Clinton "))
}

func TestLastRegistrationWins(t *testing.T) {
	r := New()
	r.AddName("Jón Jónsson", "bóndi")
	r.AddName("Jón Jónsson", "ráðherra")

	got := r.Sorted()
	assert.Len(t, got, 1)
	assert.Equal(t, "ráðherra", got[0].Title)
}

func TestSortedLocaleOrder(t *testing.T) {
	r := New()
	r.AddName("Örn Arnarson", "")
	r.AddName("Anna Björk", "")
	r.AddName("Ásta Dís", "")

	got := r.Sorted()
	assert.Len(t, got, 3)
	// Icelandic collation: A < Á < ... < Ö (Ö sorts last)
	assert.Equal(t, "Anna Björk", got[0].Name)
	assert.Equal(t, "Ásta Dís", got[1].Name)
	assert.Equal(t, "Örn Arnarson", got[2].Name)
}

func TestSortedTightensHyphens(t *testing.T) {
	r := New()
	r.AddEntity("Vestur - Þýskaland", "")

	got := r.Sorted()
	assert.Len(t, got, 1)
	assert.Equal(t, "Vestur-Þýskaland", got[0].Name)
}
