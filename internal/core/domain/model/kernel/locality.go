package kernel

import (
	"strings"

	"fulfillment/internal/pkg/guard"
)

// Locality is a value object holding a client's normalized locality name.
// External input is trimmed and case-normalized once, here at construction,
// so the rest of the engine never deals with raw strings. A Locality may be
// empty: clients outside every private-warehouse region have no locality
// preference and are served from the general inventory first.
//
// Example:
//
//	loc := kernel.NewLocality("  Rotterdam ")
//	loc.Value() // "rotterdam"
type Locality struct {
	value string
	guard guard.ConstructorGuard
}

// ErrLocalityIsNotConstructed is returned when validating a zero-value Locality.
var ErrLocalityIsNotConstructed = guard.ErrDefaultConstructorGuard

// NewLocality creates a Locality from raw external input.
// Normalization: surrounding whitespace removed, lower-cased.
func NewLocality(raw string) Locality {
	return Locality{
		value: strings.ToLower(strings.TrimSpace(raw)),
		guard: guard.NewConstructorGuard(),
	}
}

// Value returns the normalized locality name; empty for no preference.
func (l Locality) Value() string {
	return l.value
}

// IsZero reports whether the locality carries no preference.
func (l Locality) IsZero() bool {
	return l.value == ""
}

// IsEqual compares two localities by their normalized value.
func (l Locality) IsEqual(other Locality) bool {
	return l.value == other.value
}

// Validate ensures the Locality was created via NewLocality.
func (l Locality) Validate() error {
	return l.guard.Validate(ErrLocalityIsNotConstructed)
}
