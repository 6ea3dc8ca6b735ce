package committype

import (
	"fmt"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// BumpLevel represents a semver bump level.
type BumpLevel int

const (
	// BumpMajor bumps the major component of a version.
	BumpMajor BumpLevel = iota
	// BumpMinor bumps the minor component of a version.
	BumpMinor
	// BumpPatch bumps the patch component of a version.
	BumpPatch
	// BumpNone leaves a version unchanged.
	BumpNone
)

// BumpLevelIds maps BumpLevel to their string representations. The first
// entry of each list is the canonical name.
var BumpLevelIds = map[BumpLevel][]string{
	BumpMajor: {"Major"},
	BumpMinor: {"Minor"},
	BumpPatch: {"Patch"},
	BumpNone:  {"None"},
}

// typeBumpLevels holds the bump level of every commit type, indexed in
// canonical order. Breaking is the only commit type that maps to a major
// bump; Bugfix and Other both map to a patch bump.
var typeBumpLevels = [typeCount]BumpLevel{
	Breaking: BumpMajor,
	Feature:  BumpMinor,
	Bugfix:   BumpPatch,
	Other:    BumpPatch,
	Meta:     BumpNone,
}

// BumpLevel returns the semver bump level for the commit type.
func (t Type) BumpLevel() BumpLevel {
	if !t.IsValid() {
		return BumpNone
	}
	return typeBumpLevels[t]
}

// Name returns the name of this bump level.
func (b BumpLevel) Name() string {
	if ids, ok := BumpLevelIds[b]; ok {
		return ids[0]
	}
	return fmt.Sprintf("UnknownBumpLevel(%d)", int(b))
}

// String returns the name of this bump level.
func (b BumpLevel) String() string {
	return b.Name()
}

// ParseBumpLevel parses a string and returns the corresponding BumpLevel.
// It returns an error if the string doesn't match any known BumpLevel.
func ParseBumpLevel(s string) (BumpLevel, error) {
	for b, ids := range BumpLevelIds {
		for _, id := range ids {
			if strings.EqualFold(id, s) {
				return b, nil
			}
		}
	}
	return BumpLevel(0), fmt.Errorf("unknown bump level: %s", s)
}

// Apply bumps v in place according to the bump level. Bumping resets the
// lower version components and clears any pre-release and metadata parts,
// following go-semver semantics. BumpNone leaves v untouched.
func (b BumpLevel) Apply(v *semver.Version) {
	switch b {
	case BumpMajor:
		v.BumpMajor()
	case BumpMinor:
		v.BumpMinor()
	case BumpPatch:
		v.BumpPatch()
	}
}
