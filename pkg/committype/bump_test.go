package committype

import (
	"testing"

	"github.com/coreos/go-semver/semver"
	"github.com/samber/lo"
)

func TestTypeBumpLevel(t *testing.T) {
	tests := []struct {
		input    Type
		expected BumpLevel
	}{
		{Breaking, BumpMajor},
		{Feature, BumpMinor},
		{Bugfix, BumpPatch},
		{Other, BumpPatch},
		{Meta, BumpNone},
	}

	for _, tt := range tests {
		if got := tt.input.BumpLevel(); got != tt.expected {
			t.Errorf("%v.BumpLevel() = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

// Breaking must be the only commit type that maps to a major bump.
func TestMajorBumpOnlyForBreaking(t *testing.T) {
	for it := NewIterator(); ; {
		c, ok := it.Next()
		if !ok {
			break
		}

		if c.BumpLevel() == BumpMajor && c != Breaking {
			t.Errorf("%v maps to %v; only %v may", c, BumpMajor, Breaking)
		}
	}
}

func TestBumpLevelName(t *testing.T) {
	tests := []struct {
		input    BumpLevel
		expected string
	}{
		{BumpMajor, "Major"},
		{BumpMinor, "Minor"},
		{BumpPatch, "Patch"},
		{BumpNone, "None"},
		{BumpLevel(42), "UnknownBumpLevel(42)"},
	}

	for _, tt := range tests {
		if got := tt.input.Name(); got != tt.expected {
			t.Errorf("Name() = %q; want %q", got, tt.expected)
		}
		if got := tt.input.String(); got != tt.expected {
			t.Errorf("String() = %q; want %q", got, tt.expected)
		}
	}
}

func TestParseBumpLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected BumpLevel
		wantErr  bool
	}{
		{"Major", BumpMajor, false},
		{"Minor", BumpMinor, false},
		{"Patch", BumpPatch, false},
		{"None", BumpNone, false},
		{"major", BumpMajor, false},
		{"NONE", BumpNone, false},
		{"", 0, true},
		{"huge", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseBumpLevel(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseBumpLevel(%q) expected an error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseBumpLevel(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseBumpLevel(%q) = %v; want %v", tt.input, got, tt.expected)
		}
	}
}

// Every bump level must round-trip through its canonical name.
func TestParseBumpLevelRoundTrip(t *testing.T) {
	for b := range BumpLevelIds {
		got, err := ParseBumpLevel(b.Name())
		if err != nil {
			t.Errorf("ParseBumpLevel(%q) unexpected error: %v", b.Name(), err)
			continue
		}
		if got != b {
			t.Errorf("ParseBumpLevel(%q) = %v; want %v", b.Name(), got, b)
		}
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		level    BumpLevel
		version  string
		expected string
	}{
		{
			name:     "major resets minor and patch",
			level:    BumpMajor,
			version:  "1.2.3",
			expected: "2.0.0",
		},
		{
			name:     "minor resets patch",
			level:    BumpMinor,
			version:  "1.2.3",
			expected: "1.3.0",
		},
		{
			name:     "patch",
			level:    BumpPatch,
			version:  "1.2.3",
			expected: "1.2.4",
		},
		{
			name:     "none leaves the version untouched",
			level:    BumpNone,
			version:  "1.2.3",
			expected: "1.2.3",
		},
		{
			name:     "patch clears pre-release and metadata",
			level:    BumpPatch,
			version:  "1.2.3-rc.1+build.5",
			expected: "1.2.4",
		},
		{
			name:     "none keeps pre-release and metadata",
			level:    BumpNone,
			version:  "1.2.3-rc.1+build.5",
			expected: "1.2.3-rc.1+build.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := lo.Must(semver.NewVersion(tt.version))

			tt.level.Apply(v)

			if got := v.String(); got != tt.expected {
				t.Errorf("Apply(%s) on %s = %s; want %s", tt.level, tt.version, got, tt.expected)
			}
		})
	}
}
