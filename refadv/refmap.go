package refadv

import "sort"

// RefSource supplies the refs passed to Send, together with a hint about
// whether the caller-controlled order should be preserved.
//
// A plain map[string]ObjectId is always sorted by Send (Go map iteration
// order carries no semantic meaning, so it never qualifies as "already
// known sorted"). RefMap is the one exception: its iteration order is
// externally specified and total, so Send preserves it unconditionally.
type RefSource interface {
	// entries returns the refs to advertise, in the order Send should
	// emit them.
	entries() []Ref
}

// Refs adapts a plain map[string]ObjectId into a RefSource. Send sorts
// its entries by name in ascending byte order, since a Go map has no
// stable iteration order to preserve.
type Refs map[string]ObjectId

func (r Refs) entries() []Ref {
	out := make([]Ref, 0, len(r))
	for name, id := range r {
		out = append(out, Ref{Name: name, ID: id})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// RefMap is the protocol's canonical ordered ref container: an
// insertion-ordered map with dedup-on-Set, whose iteration order is
// trusted as-is by Send (no re-sorting). Build one when the caller's
// notion of ref order is not plain lexicographic (e.g. refs/heads before
// refs/tags) but is still total and stable.
type RefMap struct {
	order []string
	byID  map[string]ObjectId
}

// NewRefMap returns an empty, ready-to-use RefMap.
func NewRefMap() *RefMap {
	return &RefMap{byID: make(map[string]ObjectId)}
}

// Set records name→id, preserving the position of the first Set call for
// a given name across subsequent updates.
func (m *RefMap) Set(name string, id ObjectId) {
	if _, exists := m.byID[name]; !exists {
		m.order = append(m.order, name)
	}
	m.byID[name] = id
}

// Len reports the number of distinct ref names recorded.
func (m *RefMap) Len() int {
	return len(m.order)
}

func (m *RefMap) entries() []Ref {
	out := make([]Ref, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, Ref{Name: name, ID: m.byID[name]})
	}

	return out
}
