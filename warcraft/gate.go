package warcraft

import (
	"fmt"
)

// Layout identifies one mutually exclusive field subset of a versioned record.
type Layout int

// Branch maps every version up to and including Until onto Layout.
type Branch struct {
	Until  Version
	Layout Layout
}

// Gate selects the field layout of a versioned record.
// Branches are ordered by Until; the last branch must reach Latest.
// Supporting a new version means appending a branch.
type Gate []Branch

// LayoutFor returns the layout that applies to v.
func (g Gate) LayoutFor(v Version) (Layout, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}

	for _, b := range g {
		if v <= b.Until {
			return b.Layout, nil
		}
	}

	return 0, fmt.Errorf("%w: no layout branch for %v", ErrUnsupportedVersion, v)
}
