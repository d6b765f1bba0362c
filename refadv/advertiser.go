// Package: refadv
//
// advertiser.go — the Advertiser state machine and line-emission logic.
//
// State machine (two states):
//
//	ACCUMULATING → EMITTING
//
// Capability registration and SetDerefTags are legal only in ACCUMULATING;
// the transition happens at the first successful line write and never
// reverses. End is legal in either state; after End, further emissions
// fail with ErrSinkClosed.
package refadv

import (
	"fmt"
	"strings"
)

// Advertiser serializes a set of named object references plus capability
// tokens into the initial wire advertisement. It is not safe for
// concurrent use: calls to Send/AdvertiseHave/End must be
// strictly serialized by the caller.
type Advertiser struct {
	sink LineSink

	resolver Resolver
	marker   AdvertisedMarker

	derefTags bool
	capOrder  []string
	capSeen   map[string]struct{}

	beforeFirstLine bool // true until the first line is written
	closed          bool
}

// New returns an Advertiser writing through sink. Call Init before any
// other method.
func New(sink LineSink) *Advertiser {
	return &Advertiser{
		sink:            sink,
		capSeen:         make(map[string]struct{}),
		beforeFirstLine: true,
	}
}

// Init binds the object resolver and the advertised-mark collaborator.
// It must be called exactly once, before any other method.
func (a *Advertiser) Init(resolver Resolver, marker AdvertisedMarker) {
	a.resolver = resolver
	a.marker = marker
}

// SetDerefTags configures whether each advertised tag is followed by a
// peeled companion line carrying the tag's fully-unwrapped target. Must
// be called before the first line is emitted.
func (a *Advertiser) SetDerefTags(deref bool) error {
	if !a.beforeFirstLine {
		return ErrAfterFirstLine
	}
	a.derefTags = deref

	return nil
}

// AdvertiseCapability registers a capability token, deduplicated and
// kept in insertion order. Must be called before the first line is
// emitted.
func (a *Advertiser) AdvertiseCapability(name string) error {
	if !a.beforeFirstLine {
		return ErrAfterFirstLine
	}
	if _, seen := a.capSeen[name]; seen {
		return nil
	}
	a.capSeen[name] = struct{}{}
	a.capOrder = append(a.capOrder, name)

	return nil
}

// IsEmpty reports whether no line has been emitted yet.
func (a *Advertiser) IsEmpty() bool {
	return a.beforeFirstLine
}

// Send emits advertisement lines for every resolvable ref in refs, in
// ascending name order unless refs is a RefMap (whose iteration order is
// preserved as-is). For each ref: the object is resolved; an
// unresolvable ref is silently skipped. If it resolves to a tag and tag
// peeling is enabled, a second line is emitted with name refName+"^{}"
// carrying the fully-unwrapped non-tag target id.
func (a *Advertiser) Send(refs RefSource) error {
	if a.resolver == nil {
		return ErrNotInitialized
	}
	for _, r := range refs.entries() {
		if strings.IndexByte(r.Name, 0) >= 0 {
			return ErrInvalidRefName
		}
		obj, ok := a.resolver.ParseAny(r.ID)
		if !ok {
			continue // unresolvable ref: silent skip, not an error
		}
		a.marker.MarkAdvertised(r.ID)
		if err := a.advertiseID(r.ID, r.Name); err != nil {
			return err
		}
		tag, isTag := obj.(Tag)
		if !isTag || !a.derefTags {
			continue
		}
		if target, ok := a.peelTag(r.ID, tag); ok {
			if err := a.advertiseID(target, r.Name+"^{}"); err != nil {
				return err
			}
		}
	}

	return nil
}

// peelTag chases a tag-of-tag chain starting at startID/tag until a
// non-tag object is reached, returning its id. Each intermediate target
// is marked advertised so later AdvertiseHave dedup stays correct. If
// any intermediate resolution fails, it reports ok=false and the caller
// silently omits the peeled line.
func (a *Advertiser) peelTag(startID ObjectId, tag Tag) (ObjectId, bool) {
	id := startID
	var cur Object = tag
	for {
		t, isTag := cur.(Tag)
		if !isTag {
			return id, true
		}
		nextID := t.Target()
		next, ok := a.resolver.ParseAny(nextID)
		if !ok {
			return ObjectId{}, false
		}
		a.marker.MarkAdvertised(nextID)
		id, cur = nextID, next
	}
}

// AdvertiseHave emits a line with pseudo-name ".have", skipped if id is
// already advertised. If the resolved object is a tag, its target is
// also advertised as ".have" (subject to the same dedup), recursively
// chasing any further tag-of-tag chain.
func (a *Advertiser) AdvertiseHave(id ObjectId) error {
	if a.resolver == nil {
		return ErrNotInitialized
	}
	obj, ok := a.resolver.ParseAny(id)
	if !ok {
		return nil // unresolvable: silent drop
	}
	if err := a.advertiseAnyOnce(id, haveRefName); err != nil {
		return err
	}
	if tag, isTag := obj.(Tag); isTag {
		return a.AdvertiseHave(tag.Target())
	}

	return nil
}

// advertiseAnyOnce emits id/name via advertiseID unless id has already
// been marked advertised in this session, in which case it silently
// skips. This is the single choke point enforcing "each object reachable
// from the ref set is marked advertised at most once per session".
func (a *Advertiser) advertiseAnyOnce(id ObjectId, name string) error {
	if a.marker.IsAdvertised(id) {
		return nil
	}
	a.marker.MarkAdvertised(id)

	return a.advertiseID(id, name)
}

// IncludeAdditionalHaves iterates ids from alt and calls AdvertiseHave on
// each. Ids the alternate source cannot resolve are silently dropped by
// AdvertiseHave itself.
func (a *Advertiser) IncludeAdditionalHaves(alt AlternateSource) error {
	for {
		id, ok := alt.Next()
		if !ok {
			return nil
		}
		if err := a.AdvertiseHave(id); err != nil {
			return err
		}
	}
}

// advertiseID is the low-level line emitter used by every other method.
// The first successful call of the session decorates the line with the
// capability section (if any capabilities were registered); every
// subsequent call writes a bare "<id> SP <name> LF" line.
func (a *Advertiser) advertiseID(id ObjectId, name string) error {
	if a.closed {
		return ErrSinkClosed
	}
	if strings.IndexByte(name, 0) >= 0 {
		return ErrInvalidRefName
	}

	var line string
	if a.beforeFirstLine && len(a.capOrder) > 0 {
		line = fmt.Sprintf("%s %s\x00 %s \n", id, name, strings.Join(a.capOrder, " "))
	} else {
		line = fmt.Sprintf("%s %s\n", id, name)
	}

	if err := a.sink.WriteLine(line); err != nil {
		return err
	}
	a.beforeFirstLine = false

	return nil
}

// End terminates the stream. Legal in either state; after End, further
// emissions fail with ErrSinkClosed.
func (a *Advertiser) End() error {
	if a.closed {
		return nil
	}
	a.closed = true

	return a.sink.End()
}
