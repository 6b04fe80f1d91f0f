package conf

import (
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// Version is the version parameter.
type Version warcraft.Version

// MarshalYAML implements yaml.Marshaler.
func (v Version) MarshalYAML() (interface{}, error) {
	return warcraft.Version(v).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Version) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var in string
	if err := unmarshal(&in); err != nil {
		return err
	}
	return v.unmarshalEnv(in)
}

func (v *Version) unmarshalEnv(s string) error {
	parsed, err := warcraft.ParseVersion(s)
	if err != nil {
		return err
	}

	*v = Version(parsed)
	return nil
}
