package conf

import (
	"github.com/ptolstoi/warcraftassets/internal/logger"
)

// LogLevel is the logLevel parameter.
type LogLevel logger.Level

// MarshalYAML implements yaml.Marshaler.
func (d LogLevel) MarshalYAML() (interface{}, error) {
	switch logger.Level(d) {
	case logger.Error:
		return "error", nil

	case logger.Warn:
		return "warn", nil

	case logger.Info:
		return "info", nil
	}

	return "debug", nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *LogLevel) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var in string
	if err := unmarshal(&in); err != nil {
		return err
	}
	return d.unmarshalEnv(in)
}

func (d *LogLevel) unmarshalEnv(s string) error {
	l, err := logger.ParseLevel(s)
	if err != nil {
		return err
	}

	*d = LogLevel(l)
	return nil
}
