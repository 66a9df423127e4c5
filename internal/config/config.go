// Package config loads the configuration of the bstree command.
//
// The configuration is read from an INI file:
//
//	[tree]
//	policy  = reject
//	spacing = 5
//
//	[log]
//	level = info
//
// Every key is optional and falls back to the value returned by Default.
package config

import (
	"github.com/pkg/errors"
	"github.com/segmentio/searchtree/container/tree"
	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config holds the settings used to build and display trees.
type Config struct {
	Policy   tree.DuplicatePolicy
	Spacing  int
	LogLevel logrus.Level
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Policy:   tree.Reject,
		Spacing:  tree.DefaultSpacing,
		LogLevel: logrus.InfoLevel,
	}
}

// Load reads the configuration file at path. An empty path returns the
// default configuration.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := parse(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "loading configuration from %s", path)
	}
	return cfg, nil
}

// Parse reads the configuration from the INI document in data.
func Parse(data []byte) (Config, error) {
	return parse(data)
}

func parse(source interface{}) (Config, error) {
	cfg := Default()

	file, err := ini.Load(source)
	if err != nil {
		return cfg, err
	}

	if err := cfg.parseTree(file.Section("tree")); err != nil {
		return cfg, err
	}
	if err := cfg.parseLog(file.Section("log")); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg *Config) parseTree(section *ini.Section) error {
	if section.HasKey("policy") {
		if err := cfg.SetPolicy(section.Key("policy").String()); err != nil {
			return err
		}
	}

	if section.HasKey("spacing") {
		spacing, err := section.Key("spacing").Int()
		if err != nil {
			return errors.Wrap(err, "tree.spacing")
		}
		if err := cfg.SetSpacing(spacing); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *Config) parseLog(section *ini.Section) error {
	if section.HasKey("level") {
		return cfg.SetLogLevel(section.Key("level").String())
	}
	return nil
}

// SetPolicy sets the duplicate key policy from its name.
func (cfg *Config) SetPolicy(name string) error {
	policy, err := tree.ParseDuplicatePolicy(name)
	if err != nil {
		return errors.Wrap(err, "tree.policy")
	}
	cfg.Policy = policy
	return nil
}

// SetSpacing sets the layout spacing, which must be positive.
func (cfg *Config) SetSpacing(spacing int) error {
	if spacing <= 0 {
		return errors.Errorf("tree.spacing: must be positive, got %d", spacing)
	}
	cfg.Spacing = spacing
	return nil
}

// SetLogLevel sets the log level from its name.
func (cfg *Config) SetLogLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return errors.Wrap(err, "log.level")
	}
	cfg.LogLevel = level
	return nil
}
