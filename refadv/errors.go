// Package: refadv
//
// errors.go — sentinel errors for the advertiser.
//
// Error policy:
//   - Only sentinel variables are exported.
//   - Callers branch on semantics with errors.Is, never string comparison.
//   - Object-resolution failures are NOT errors: an unresolvable ref, peel
//     target, or alternate-source id is silently dropped (see Advertiser.Send,
//     peelTag, AdvertiseHave).

package refadv

import "errors"

var (
	// ErrInvalidRefName is returned when a ref name contains a NUL byte.
	ErrInvalidRefName = errors.New("refadv: ref name contains NUL")

	// ErrAfterFirstLine is returned when capability registration or
	// SetDerefTags is attempted after the first line has been emitted.
	ErrAfterFirstLine = errors.New("refadv: capability/deref-tags configuration after first line")

	// ErrSinkClosed is returned when an emission is attempted after End
	// has already been called.
	ErrSinkClosed = errors.New("refadv: sink already closed")

	// ErrNotInitialized is returned when Send or AdvertiseHave is called
	// before Init has bound a resolver and marker.
	ErrNotInitialized = errors.New("refadv: Init has not been called")
)
