// Package committype defines the closed set of emoji commit types and the
// semantic-versioning bump level each one maps to.
package committype

import (
	"fmt"
	"strings"
)

// Type represents a specific commit type.
type Type int

const (
	// Breaking denotes a backwards-incompatible change.
	Breaking Type = iota
	// Feature denotes new functionality.
	Feature
	// Bugfix denotes a fix for incorrect behavior.
	Bugfix
	// Other denotes cleanup or performance work.
	Other
	// Meta denotes changes that do not touch the code itself.
	Meta
)

// typeCount is the total number of commit types.
const typeCount = 5

// TypeIds maps Type to their string representations. The first entry of each
// list is the canonical id. The map has the shape enumflag expects, so
// commands can bind a Type directly to a flag.
var TypeIds = map[Type][]string{
	Breaking: {"breaking"},
	Feature:  {"feature"},
	Bugfix:   {"bugfix"},
	Other:    {"other"},
	Meta:     {"meta"},
}

// typeEmojis holds the display emoji of every commit type, indexed in
// canonical order.
var typeEmojis = [typeCount]string{
	Breaking: "💥",
	Feature:  "🎉",
	Bugfix:   "🐛",
	Other:    "🔥",
	Meta:     "🌹",
}

// typeDescriptions holds the human-readable description of every commit
// type, indexed in canonical order. These are the bare labels, without the
// semver hint baked into the text.
var typeDescriptions = [typeCount]string{
	Breaking: "Breaking change",
	Feature:  "New functionality",
	Bugfix:   "Bugfix",
	Other:    "Cleanup / Performance",
	Meta:     "Meta",
}

// First returns the first commit type in canonical order (Breaking).
func First() Type { return Breaking }

// Last returns the last commit type in canonical order (Meta).
func Last() Type { return Meta }

// Next returns the commit type immediately following t in canonical order.
// The boolean is false when t is the last commit type.
func (t Type) Next() (Type, bool) {
	if !t.IsValid() || t == Last() {
		return 0, false
	}
	return t + 1, true
}

// Prev returns the commit type immediately preceding t in canonical order.
// The boolean is false when t is the first commit type.
func (t Type) Prev() (Type, bool) {
	if !t.IsValid() || t == First() {
		return 0, false
	}
	return t - 1, true
}

// IsValid reports whether t is one of the defined commit types.
func (t Type) IsValid() bool {
	return t >= First() && t <= Last()
}

// Emoji returns the display emoji for the commit type.
func (t Type) Emoji() string {
	if !t.IsValid() {
		return ""
	}
	return typeEmojis[t]
}

// Description returns the description for the commit type.
func (t Type) Description() string {
	if !t.IsValid() {
		return ""
	}
	return typeDescriptions[t]
}

// String returns the canonical id of the commit type.
func (t Type) String() string {
	if ids, ok := TypeIds[t]; ok {
		return ids[0]
	}
	return fmt.Sprintf("UnknownType(%d)", int(t))
}

// ParseType parses a string and returns the corresponding Type.
// It returns an error if the string doesn't match any known Type.
func ParseType(s string) (Type, error) {
	for t, ids := range TypeIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return t, nil
			}
		}
	}
	return Type(0), fmt.Errorf("unknown commit type: %s", s)
}
