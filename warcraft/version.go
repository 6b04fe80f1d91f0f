// Package warcraft contains the format version epochs shared by all asset containers.
package warcraft

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedVersion is returned when no field layout is defined for a version.
var ErrUnsupportedVersion = errors.New("unsupported version")

// Version is a format version epoch. Epochs are ordered.
type Version int

// Version epochs.
const (
	Unknown Version = iota
	Classic
	BurningCrusade
	Wrath
	Cataclysm
	Mists
	Warlords
	Legion
	BattleForAzeroth

	// Latest is the most recent supported epoch.
	Latest = BattleForAzeroth
)

var versionNames = map[Version]string{
	Classic:          "classic",
	BurningCrusade:   "burningcrusade",
	Wrath:            "wrath",
	Cataclysm:        "cataclysm",
	Mists:            "mists",
	Warlords:         "warlords",
	Legion:           "legion",
	BattleForAzeroth: "battleforazeroth",
}

// String implements fmt.Stringer.
func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("version(%d)", int(v))
}

// Validate returns ErrUnsupportedVersion if v is outside the supported range.
func (v Version) Validate() error {
	if v < Classic || v > Latest {
		return fmt.Errorf("%w: %v", ErrUnsupportedVersion, v)
	}
	return nil
}

// ParseVersion parses a version epoch by name, case-insensitively.
func ParseVersion(s string) (Version, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for v, n := range versionNames {
		if n == name {
			return v, nil
		}
	}
	return Unknown, fmt.Errorf("%w: '%s'", ErrUnsupportedVersion, s)
}
