package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/searchtree/container/tree"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, tree.Reject, cfg.Policy)
	assert.Equal(t, tree.DefaultSpacing, cfg.Spacing)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bstree.ini")
	require.NoError(t, os.WriteFile(path, []byte(`
[tree]
policy  = allow-equal-right
spacing = 3

[log]
level = debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, tree.AllowEqualRight, cfg.Policy)
	assert.Equal(t, 3, cfg.Spacing)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.ErrorContains(t, err, "loading configuration from")
}

func TestParsePartial(t *testing.T) {
	cfg, err := Parse([]byte("[tree]\npolicy = count\n"))
	require.NoError(t, err)
	assert.Equal(t, tree.CountOccurrences, cfg.Policy)
	assert.Equal(t, tree.DefaultSpacing, cfg.Spacing)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   string
	}{
		{name: "unknown policy", input: "[tree]\npolicy = chain\n", err: "tree.policy"},
		{name: "spacing not a number", input: "[tree]\nspacing = wide\n", err: "tree.spacing"},
		{name: "spacing not positive", input: "[tree]\nspacing = 0\n", err: "must be positive"},
		{name: "unknown log level", input: "[log]\nlevel = chatty\n", err: "log.level"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse([]byte(test.input))
			assert.ErrorContains(t, err, test.err)
		})
	}
}
