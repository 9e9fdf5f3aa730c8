package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Config holds runtime configuration for tracing, overlay placement and the view.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	Debug bool `json:"debug"`

	// Boundary tracing
	ClosureThreshold float64 `json:"closure_threshold"` // px, local image space
	MarkerRadius     float64 `json:"marker_radius"`
	SegmentWidth     float64 `json:"segment_width"`

	// Chakra overlay
	ChakraSize int  `json:"chakra_size"`
	AutoShow   bool `json:"auto_show"`
	RotateStep int  `json:"rotate_step"`

	// View
	MaxViewWidth  int    `json:"max_view_width"`
	MaxViewHeight int    `json:"max_view_height"`
	DarkMode      bool   `json:"dark_mode"`
	ExportDir     string `json:"export_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:            false,
		ClosureThreshold: 10,
		MarkerRadius:     10,
		SegmentWidth:     5,
		ChakraSize:       300,
		AutoShow:         true,
		RotateStep:       15,
		MaxViewWidth:     1000,
		MaxViewHeight:    700,
		DarkMode:         false,
		ExportDir:        ".",
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.ClosureThreshold <= 0 {
		c.ClosureThreshold = 10
	}
	if c.MarkerRadius <= 0 {
		c.MarkerRadius = 10
	}
	if c.SegmentWidth <= 0 {
		c.SegmentWidth = 5
	}
	if c.SegmentWidth > 2*c.MarkerRadius {
		c.SegmentWidth = 2 * c.MarkerRadius
	}
	if c.ChakraSize < 32 {
		c.ChakraSize = 300
	}
	if c.ChakraSize > 4096 {
		c.ChakraSize = 4096
	}
	if c.RotateStep <= 0 || c.RotateStep > 360 {
		c.RotateStep = 15
	}
	if c.MaxViewWidth < 100 {
		c.MaxViewWidth = 1000
	}
	if c.MaxViewHeight < 100 {
		c.MaxViewHeight = 700
	}
	c.ExportDir = strings.TrimSpace(c.ExportDir)
	if c.ExportDir == "" {
		c.ExportDir = "."
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
