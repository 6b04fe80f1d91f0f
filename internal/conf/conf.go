// Package conf contains the configuration of the inspection tool.
package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/ptolstoi/warcraftassets/internal/logger"
	"github.com/ptolstoi/warcraftassets/warcraft"
)

// EnvPrefix is the prefix of environment variables that override the configuration.
const EnvPrefix = "WMOINSPECT_"

var defaultConfPaths = []string{
	"wmoinspect.yml",
	"/etc/wmoinspect/wmoinspect.yml",
}

// Conf is the configuration.
type Conf struct {
	Address     string     `yaml:"address"`
	DataDir     string     `yaml:"dataDir"`
	CatalogPath string     `yaml:"catalogPath"`
	Version     Version    `yaml:"version"`
	LogLevel    LogLevel   `yaml:"logLevel"`
	MaxFileSize StringSize `yaml:"maxFileSize"`
}

func (conf *Conf) setDefaults() {
	conf.Address = "localhost:7089"
	conf.DataDir = "."
	conf.CatalogPath = "./catalog.db"
	conf.Version = Version(warcraft.Wrath)
	conf.LogLevel = LogLevel(logger.Info)
	conf.MaxFileSize = 64 * 1024 * 1024
}

type envUnmarshaler interface {
	unmarshalEnv(string) error
}

func (conf *Conf) loadEnv(lookup func(string) (string, bool)) error {
	for _, e := range []struct {
		key  string
		dest interface{}
	}{
		{"ADDRESS", &conf.Address},
		{"DATADIR", &conf.DataDir},
		{"CATALOGPATH", &conf.CatalogPath},
		{"VERSION", &conf.Version},
		{"LOGLEVEL", &conf.LogLevel},
		{"MAXFILESIZE", &conf.MaxFileSize},
	} {
		ev, ok := lookup(EnvPrefix + e.key)
		if !ok {
			continue
		}

		switch dest := e.dest.(type) {
		case *string:
			*dest = ev

		case envUnmarshaler:
			if err := dest.unmarshalEnv(ev); err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, e.key, err)
			}
		}
	}

	return nil
}

// Validate checks the configuration for errors.
func (conf *Conf) Validate() error {
	if conf.Address == "" {
		return fmt.Errorf("'address' must not be empty")
	}
	if conf.DataDir == "" {
		return fmt.Errorf("'dataDir' must not be empty")
	}
	if err := warcraft.Version(conf.Version).Validate(); err != nil {
		return fmt.Errorf("'version': %w", err)
	}
	if conf.MaxFileSize == 0 {
		return fmt.Errorf("'maxFileSize' must be greater than zero")
	}
	return nil
}

func firstThatExists(paths []string) string {
	for _, pa := range paths {
		if _, err := os.Stat(pa); err == nil {
			return pa
		}
	}
	return ""
}

// Load loads a configuration from fpath, or from the first default path that
// exists when fpath is empty. It returns the path that was read, which is
// empty when only defaults and environment variables were used.
func Load(fpath string) (*Conf, string, error) {
	conf := &Conf{}
	conf.setDefaults()

	if fpath == "" {
		fpath = firstThatExists(defaultConfPaths)
	}

	if fpath != "" {
		byts, err := os.ReadFile(fpath)
		if err != nil {
			return nil, "", err
		}

		if err := yaml.UnmarshalStrict(byts, conf); err != nil {
			return nil, "", err
		}
	}

	if err := conf.loadEnv(os.LookupEnv); err != nil {
		return nil, "", err
	}

	if err := conf.Validate(); err != nil {
		return nil, "", err
	}

	return conf, fpath, nil
}
