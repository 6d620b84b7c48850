package model

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigInTestdata(t *testing.T) {
	filepath.WalkDir("../testdata/config", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".toml") {
			return nil
		}
		name := filepath.Base(path)
		t.Run(name, testParseConfig(path))
		return nil
	})
}

func testParseConfig(path string) func(t *testing.T) {
	return func(t *testing.T) {
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		c, err := parseConfig(f)
		require.NoError(t, err)
		t.Logf("%#v\n", c)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	c, err := LoadConfigFromFile("../testdata/config/display.toml")
	require.NoError(t, err)
	assert.Equal(t, "rpn> ", c.Prompt)
	assert.Equal(t, 2, c.Precision)
	assert.Equal(t, 10, c.HistorySize)
	assert.False(t, c.Color)
	assert.False(t, c.StrictDivision)

	c, err = LoadConfigFromFile("../testdata/config/strict.toml")
	require.NoError(t, err)
	assert.True(t, c.StrictDivision)
	assert.True(t, c.StrictAssignment)
	// Unset keys keep their defaults.
	assert.Equal(t, "> ", c.Prompt)
	assert.Equal(t, -1, c.Precision)
	assert.True(t, c.Color)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown key", body: "promt = \"x\"\n"},
		{name: "bad history", body: "history_size = 0\n"},
		{name: "bad precision", body: "precision = -2\n"},
		{name: "bad syntax", body: "prompt = \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(strings.NewReader(tt.body))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfigFromFile("../testdata/config/does-not-exist.toml")
	require.Error(t, err)
}

func TestConfigOptions(t *testing.T) {
	c := DefaultConfig()
	c.StrictDivision = true
	opts := c.Options()
	assert.True(t, opts.StrictDivision)
	assert.False(t, opts.StrictAssignment)
}
