package refadv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ObjectId is a fixed-length binary object identifier rendered as a
// lowercase hexadecimal string of known length L. L is not hard-coded by
// this package: SHA-1 digests (L=40) and SHA-256 digests (L=64) are both
// valid ObjectId values, and the encoder never inspects L beyond echoing
// it verbatim on the wire.
type ObjectId struct {
	// Hex is the lowercase hex rendering of the object's digest.
	Hex string
}

// NewObjectId wraps a raw binary digest as an ObjectId.
func NewObjectId(raw []byte) ObjectId {
	return ObjectId{Hex: hex.EncodeToString(raw)}
}

// ParseObjectId validates and wraps an already-hex-encoded id. It rejects
// odd-length strings and non-hex characters, and rejects uppercase hex
// digits outright rather than silently lowercasing them: the wire format
// requires a lowercase rendering, and an uppercase input is a sign the
// caller's resolver isn't producing ids in the expected form.
func ParseObjectId(s string) (ObjectId, error) {
	if len(s)%2 != 0 {
		return ObjectId{}, fmt.Errorf("refadv: object id %q has odd length", s)
	}
	if s != strings.ToLower(s) {
		return ObjectId{}, fmt.Errorf("refadv: object id %q is not lowercase", s)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return ObjectId{}, fmt.Errorf("refadv: object id %q is not valid hex: %w", s, err)
	}

	return ObjectId{Hex: s}, nil
}

// String returns the lowercase hex rendering used on the wire.
func (id ObjectId) String() string {
	return id.Hex
}

// IsZero reports whether id carries no digest at all.
func (id ObjectId) IsZero() bool {
	return id.Hex == ""
}
