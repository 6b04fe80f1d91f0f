package conf

import (
	"code.cloudfoundry.org/bytefmt"
)

// StringSize is a size that is unmarshaled from a string like "64MB".
type StringSize uint64

// MarshalYAML implements yaml.Marshaler.
func (s StringSize) MarshalYAML() (interface{}, error) {
	return bytefmt.ByteSize(uint64(s)), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringSize) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var in string
	if err := unmarshal(&in); err != nil {
		return err
	}
	return s.unmarshalEnv(in)
}

func (s *StringSize) unmarshalEnv(v string) error {
	n, err := bytefmt.ToBytes(v)
	if err != nil {
		return err
	}

	*s = StringSize(n)
	return nil
}
