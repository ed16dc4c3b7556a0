// Package register aggregates the distinct person and entity names found
// while rendering a document.
package register

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/revelaction/tokmark/token"
)

// EntryKind classifies a registry entry.
type EntryKind int

const (
	// Ref is a bare surname pointing at a registered full name. Refs are
	// used to resolve clicks but never appear in the rendered list.
	Ref EntryKind = iota
	// Name is a person known by full name.
	Name
	// Entity is a named entity (organization, product, ...).
	Entity
)

func (k EntryKind) String() string {
	return [...]string{"ref", "name", "entity"}[k]
}

// Entry is one registry record.
type Entry struct {
	Name string
	Kind EntryKind

	// Title is the descriptive string of a person or the definition of an
	// entity, when known.
	Title string

	// FullName is the referenced full name of a Ref entry.
	FullName string
}

// Registry is keyed by whitespace-normalized display name. Registration is
// last write wins per key.
type Registry struct {
	entries map[string]Entry
	coll    *collate.Collator
}

func New() *Registry {
	return &Registry{
		entries: map[string]Entry{},
		coll:    collate.New(language.Icelandic, collate.IgnoreCase),
	}
}

// AddName registers a person known by full name.
func (r *Registry) AddName(name, title string) {
	name = token.NormalizeName(name)
	if name == "" {
		return
	}
	r.entries[name] = Entry{Name: name, Kind: Name, Title: title}
}

// AddRef registers a surname reference pointing at a full name.
func (r *Registry) AddRef(name, fullName string) {
	name = token.NormalizeName(name)
	if name == "" {
		return
	}
	r.entries[name] = Entry{Name: name, Kind: Ref, FullName: token.NormalizeName(fullName)}
}

// AddEntity registers a named entity with an optional definition.
func (r *Registry) AddEntity(name, definition string) {
	name = token.NormalizeName(name)
	if name == "" {
		return
	}
	r.entries[name] = Entry{Name: name, Kind: Entity, Title: definition}
}

// Get returns the entry for a display name.
func (r *Registry) Get(name string) (Entry, bool) {
	e, ok := r.entries[token.NormalizeName(name)]
	return e, ok
}

// Resolve maps a surname reference to its registered full name. Non-ref
// names resolve to themselves.
func (r *Registry) Resolve(name string) string {
	name = token.NormalizeName(name)
	if e, ok := r.entries[name]; ok && e.Kind == Ref && e.FullName != "" {
		return e.FullName
	}
	return name
}

// Len returns the number of entries, refs included.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Sorted returns the displayable entries (refs excluded) sorted by
// locale-aware name comparison. Display names have the stylistic " - "
// separators of compound proper names tightened.
func (r *Registry) Sorted() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Kind == Ref {
			continue
		}
		e.Name = token.TightenHyphens(e.Name)
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return r.coll.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
