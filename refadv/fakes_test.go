package refadv_test

import "github.com/katalvlaran/gitwire/refadv"

// commitObj is a minimal non-tag Object used across refadv tests.
type commitObj struct{}

func (commitObj) Type() refadv.ObjectType { return refadv.ObjectCommit }

// tagObj is a minimal Tag used across refadv tests.
type tagObj struct{ target refadv.ObjectId }

func (tagObj) Type() refadv.ObjectType   { return refadv.ObjectTag }
func (t tagObj) Target() refadv.ObjectId { return t.target }

// fakeResolver resolves ids found in its map and reports NotFound for
// everything else, matching Resolver's never-raise contract.
type fakeResolver map[string]refadv.Object

func (r fakeResolver) ParseAny(id refadv.ObjectId) (refadv.Object, bool) {
	obj, ok := r[id.Hex]

	return obj, ok
}

// fakeMarker is a trivial in-memory AdvertisedMarker.
type fakeMarker map[string]bool

func (m fakeMarker) IsAdvertised(id refadv.ObjectId) bool { return m[id.Hex] }
func (m fakeMarker) MarkAdvertised(id refadv.ObjectId)    { m[id.Hex] = true }

// fakeAlternates is a simple slice-backed AlternateSource.
type fakeAlternates struct {
	ids []refadv.ObjectId
	i   int
}

func (a *fakeAlternates) Next() (refadv.ObjectId, bool) {
	if a.i >= len(a.ids) {
		return refadv.ObjectId{}, false
	}
	id := a.ids[a.i]
	a.i++

	return id, true
}
