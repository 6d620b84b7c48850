package model

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/timewinder-dev/rpn/interp"
)

// Config is the on-disk configuration of a calculator session.
type Config struct {
	Prompt           string `toml:"prompt"`
	StrictDivision   bool   `toml:"strict_division"`
	StrictAssignment bool   `toml:"strict_assignment"`
	// Precision is the number of decimals printed; -1 prints the shortest
	// form that reads back as the same number.
	Precision   int  `toml:"precision"`
	HistorySize int  `toml:"history_size"`
	Color       bool `toml:"color"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:      "> ",
		Precision:   -1,
		HistorySize: 100,
		Color:       true,
	}
}

func parseConfig(f io.Reader) (*Config, error) {
	out := DefaultConfig()
	md, err := toml.NewDecoder(f).Decode(out)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	if out.HistorySize <= 0 {
		return nil, fmt.Errorf("history_size must be positive, got %d", out.HistorySize)
	}
	if out.Precision < -1 {
		return nil, fmt.Errorf("precision must be -1 or more, got %d", out.Precision)
	}
	return out, nil
}

func LoadConfigFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := parseConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c *Config) Options() interp.Options {
	return interp.Options{
		StrictDivision:   c.StrictDivision,
		StrictAssignment: c.StrictAssignment,
	}
}

func (c *Config) BuildSession() (*Session, error) {
	return NewSession(c.Options(), c.HistorySize)
}

// BuildREPL wires a new session to a REPL using the configured prompt and
// precision.
func (c *Config) BuildREPL(interactive bool) (*REPL, error) {
	s, err := c.BuildSession()
	if err != nil {
		return nil, err
	}
	return &REPL{
		Session:     s,
		Prompt:      c.Prompt,
		Precision:   c.Precision,
		Interactive: interactive,
	}, nil
}
