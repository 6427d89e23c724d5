package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Side  int   `json:"side"`
	Pixel int   `json:"pixel"`
	Rate  int   `json:"rate"`
	Seed  int64 `json:"seed"`

	File string `json:"-"`
}

// NewConfig returns a Config populated with the reference defaults:
// a 200-cell board at 5 pixels per cell, 60 generations per second.
func NewConfig() *Config {
	return &Config{Side: 200, Pixel: 5, Rate: 60, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Side, "side", c.Side, "board side length in cells")
	fs.IntVar(&c.Pixel, "pixel", c.Pixel, "pixel size of one cell")
	fs.IntVar(&c.Rate, "rate", c.Rate, "initial generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "board seed, 0 seeds from the clock")
	fs.StringVar(&c.File, "config", c.File, "optional JSON config file")
}

// LoadFile applies values from a JSON file over the current config.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read config: %s", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal config: %s", path)
	}
	return nil
}

// Validate reports the first unusable value, if any.
func (c *Config) Validate() error {
	if c.Side < 3 {
		return errors.Errorf("side must be at least 3, got %d", c.Side)
	}
	if c.Pixel < 1 {
		return errors.Errorf("pixel must be at least 1, got %d", c.Pixel)
	}
	if c.Rate < 1 {
		return errors.Errorf("rate must be at least 1, got %d", c.Rate)
	}
	return nil
}
