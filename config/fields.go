package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Field describes one user-editable setting as text.
type Field struct {
	ID    string
	Label string
	Get   func(c *Config) string
	Set   func(c *Config, raw string) error
}

// Fields lists the settings exposed in the settings panel, in display order.
func Fields() []Field {
	return []Field{
		floatField("closure_threshold", "Closure Threshold (px)", func(c *Config) *float64 { return &c.ClosureThreshold }),
		floatField("marker_radius", "Marker Radius (px)", func(c *Config) *float64 { return &c.MarkerRadius }),
		floatField("segment_width", "Segment Width (px)", func(c *Config) *float64 { return &c.SegmentWidth }),
		intField("chakra_size", "Chakra Size (px)", func(c *Config) *int { return &c.ChakraSize }),
		intField("rotate_step", "Rotate Step (deg)", func(c *Config) *int { return &c.RotateStep }),
		boolField("auto_show", "Auto Show Chakra (true/false)", func(c *Config) *bool { return &c.AutoShow }),
		boolField("dark_mode", "Dark Mode (true/false)", func(c *Config) *bool { return &c.DarkMode }),
		{
			ID:    "export_dir",
			Label: "Export Directory",
			Get:   func(c *Config) string { return c.ExportDir },
			Set: func(c *Config, raw string) error {
				if v := strings.TrimSpace(raw); v != "" {
					c.ExportDir = v
				}
				return nil
			},
		},
	}
}

// ApplyText parses values keyed by Field.ID into a copy of c and validates
// it. Missing ids keep their current value. c is untouched on error.
func ApplyText(c *Config, values map[string]string) (*Config, error) {
	next := *c
	for _, f := range Fields() {
		raw, ok := values[f.ID]
		if !ok {
			continue
		}
		if err := f.Set(&next, raw); err != nil {
			return nil, fmt.Errorf("%s: %w", f.Label, err)
		}
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	return &next, nil
}

func floatField(id, label string, ref func(*Config) *float64) Field {
	return Field{
		ID:    id,
		Label: label,
		Get:   func(c *Config) string { return strconv.FormatFloat(*ref(c), 'f', 1, 64) },
		Set: func(c *Config, raw string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", raw)
			}
			*ref(c) = f
			return nil
		},
	}
}

func intField(id, label string, ref func(*Config) *int) Field {
	return Field{
		ID:    id,
		Label: label,
		Get:   func(c *Config) string { return strconv.Itoa(*ref(c)) },
		Set: func(c *Config, raw string) error {
			i, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return fmt.Errorf("not an integer: %q", raw)
			}
			*ref(c) = i
			return nil
		},
	}
}

func boolField(id, label string, ref func(*Config) *bool) Field {
	return Field{
		ID:    id,
		Label: label,
		Get:   func(c *Config) string { return strconv.FormatBool(*ref(c)) },
		Set: func(c *Config, raw string) error {
			b, ok := parseBoolLoose(raw)
			if !ok {
				return fmt.Errorf("expected true or false: %q", raw)
			}
			*ref(c) = b
			return nil
		},
	}
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
