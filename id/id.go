// Package id defines TypeID-based identity types for all callback-source
// entities.
//
// Every dispatchable entity uses a single EntityID struct with a prefix
// that identifies the entity type. IDs are K-sortable (UUIDv7-based),
// globally unique, and URL-safe in the format "prefix_suffix".
package id

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

// Prefix identifies the entity type encoded in a TypeID.
type Prefix string

// Prefix constants for all callback-source entity types.
const (
	PrefixSubscription Prefix = "sub"
	PrefixTimer        Prefix = "tmr"
	PrefixService      Prefix = "srv"
	PrefixClient       Prefix = "clt"
	PrefixWaitable     Prefix = "wtb"
	PrefixGroup        Prefix = "cbg"
	PrefixNode         Prefix = "node"
)

// EntityID is the primary identifier type for all callback-source
// entities. It wraps a TypeID providing a prefix-qualified, globally
// unique, sortable, URL-safe identifier in the format "prefix_suffix".
type EntityID struct {
	inner typeid.TypeID
	valid bool
}

// Nil is the zero-value EntityID.
var Nil EntityID

// New generates a new globally unique ID with the given prefix.
// It panics if prefix is not a valid TypeID prefix (programming error).
func New(prefix Prefix) EntityID {
	tid, err := typeid.Generate(string(prefix))
	if err != nil {
		panic(fmt.Sprintf("id: invalid prefix %q: %v", prefix, err))
	}

	return EntityID{inner: tid, valid: true}
}

// Parse parses a TypeID string (e.g., "sub_01h2xcejqtf2nbrexx3vqjhp41")
// into an EntityID. Returns an error if the string is not valid.
func Parse(s string) (EntityID, error) {
	if s == "" {
		return Nil, fmt.Errorf("id: parse %q: empty string", s)
	}

	tid, err := typeid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("id: parse %q: %w", s, err)
	}

	return EntityID{inner: tid, valid: true}, nil
}

// ParseWithPrefix parses a TypeID string and validates that its prefix
// matches the expected value.
func ParseWithPrefix(s string, expected Prefix) (EntityID, error) {
	parsed, err := Parse(s)
	if err != nil {
		return Nil, err
	}

	if parsed.Prefix() != expected {
		return Nil, fmt.Errorf("id: expected prefix %q, got %q", expected, parsed.Prefix())
	}

	return parsed, nil
}

// MustParse is like Parse but panics on error. Use for hardcoded ID values.
func MustParse(s string) EntityID {
	parsed, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("id: must parse %q: %v", s, err))
	}

	return parsed
}

// ──────────────────────────────────────────────────
// Convenience constructors
// ──────────────────────────────────────────────────

// NewSubscriptionID generates a new unique subscription ID.
func NewSubscriptionID() EntityID { return New(PrefixSubscription) }

// NewTimerID generates a new unique timer ID.
func NewTimerID() EntityID { return New(PrefixTimer) }

// NewServiceID generates a new unique service ID.
func NewServiceID() EntityID { return New(PrefixService) }

// NewClientID generates a new unique client ID.
func NewClientID() EntityID { return New(PrefixClient) }

// NewWaitableID generates a new unique waitable ID.
func NewWaitableID() EntityID { return New(PrefixWaitable) }

// NewGroupID generates a new unique callback-group ID.
func NewGroupID() EntityID { return New(PrefixGroup) }

// NewNodeID generates a new unique node ID.
func NewNodeID() EntityID { return New(PrefixNode) }

// ──────────────────────────────────────────────────
// Convenience parsers
// ──────────────────────────────────────────────────

// ParseSubscriptionID parses a string and validates the "sub" prefix.
func ParseSubscriptionID(s string) (EntityID, error) {
	return ParseWithPrefix(s, PrefixSubscription)
}

// ParseTimerID parses a string and validates the "tmr" prefix.
func ParseTimerID(s string) (EntityID, error) { return ParseWithPrefix(s, PrefixTimer) }

// ParseServiceID parses a string and validates the "srv" prefix.
func ParseServiceID(s string) (EntityID, error) { return ParseWithPrefix(s, PrefixService) }

// ParseClientID parses a string and validates the "clt" prefix.
func ParseClientID(s string) (EntityID, error) { return ParseWithPrefix(s, PrefixClient) }

// ParseWaitableID parses a string and validates the "wtb" prefix.
func ParseWaitableID(s string) (EntityID, error) { return ParseWithPrefix(s, PrefixWaitable) }

// ParseGroupID parses a string and validates the "cbg" prefix.
func ParseGroupID(s string) (EntityID, error) { return ParseWithPrefix(s, PrefixGroup) }

// ParseNodeID parses a string and validates the "node" prefix.
func ParseNodeID(s string) (EntityID, error) { return ParseWithPrefix(s, PrefixNode) }

// ──────────────────────────────────────────────────
// EntityID methods
// ──────────────────────────────────────────────────

// String returns the full TypeID string representation (prefix_suffix).
// Returns an empty string for the Nil ID.
func (i EntityID) String() string {
	if !i.valid {
		return ""
	}

	return i.inner.String()
}

// Prefix returns the prefix component of this ID.
func (i EntityID) Prefix() Prefix {
	if !i.valid {
		return ""
	}

	return Prefix(i.inner.Prefix())
}

// IsNil reports whether this ID is the zero value.
func (i EntityID) IsNil() bool {
	return !i.valid
}

// MarshalText implements encoding.TextMarshaler.
func (i EntityID) MarshalText() ([]byte, error) {
	if !i.valid {
		return []byte{}, nil
	}

	return []byte(i.inner.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *EntityID) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*i = Nil

		return nil
	}

	parsed, err := Parse(string(data))
	if err != nil {
		return err
	}

	*i = parsed

	return nil
}
