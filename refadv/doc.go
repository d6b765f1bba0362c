// Package refadv encodes the initial ref advertisement of the git
// fetch/push wire protocol: a sorted list of named object references,
// an optional peeled-tag companion line per tag, synthetic ".have" lines
// pulled from alternate object sources, and a capability-negotiation
// token list riding on the very first line.
//
// refadv owns no transport, no object storage and no compression — it is
// driven by three small external collaborators supplied by the caller:
//
//	Resolver         — resolves an ObjectId to a parsed Object (or NotFound)
//	LineSink         — accepts one formatted advertisement line at a time
//	AdvertisedMarker — a per-object "already advertised" bit owned by the caller
//
// Typical use:
//
//	adv := refadv.New(sink)
//	adv.Init(resolver, marker)
//	adv.AdvertiseCapability("side-band-64k")
//	adv.SetDerefTags(true)
//	if err := adv.Send(refs); err != nil { ... }
//	if err := adv.IncludeAdditionalHaves(alt); err != nil { ... }
//	if err := adv.End(); err != nil { ... }
package refadv
