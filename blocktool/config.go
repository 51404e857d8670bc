package blocktool

import (
	"fmt"
	"sort"
	"strings"
)

// Default alert palette, matching the conventional editor callout colors.
var defaultTypeColors = map[string]string{
	"primary": "#ebf8ff",
	"info":    "#e7f9ff",
	"success": "#e6fcf5",
	"warning": "#fff3bf",
	"danger":  "#fff5f5",
	"light":   "#f8f9fa",
	"dark":    "#343a40",
}

// Config holds the options a host may pass when constructing a tool.
// The zero value is usable: construction applies defaults first.
type Config struct {
	// TitlePlaceholder is shown in the empty title region.
	TitlePlaceholder string `json:"titlePlaceholder,omitempty"`
	// MessagePlaceholder is shown in the empty message region.
	MessagePlaceholder string `json:"messagePlaceholder,omitempty"`
	// DefaultType is the fallback for typed blocks whose stored type is
	// not a key of TypeColors.
	DefaultType string `json:"defaultType,omitempty"`
	// TypeColors maps each recognized type key to its backdrop color.
	TypeColors map[string]string `json:"typeColors,omitempty"`
}

// DefaultConfig returns the zero configuration with every default
// applied: standard placeholders, "info" default type and the standard
// alert palette.
func DefaultConfig() Config {
	return Config{}.applyDefaults()
}

func (c Config) applyDefaults() Config {
	if c.TitlePlaceholder == "" {
		c.TitlePlaceholder = "Title"
	}
	if c.MessagePlaceholder == "" {
		c.MessagePlaceholder = "Message"
	}
	if c.DefaultType == "" {
		c.DefaultType = "info"
	}
	if c.TypeColors == nil {
		c.TypeColors = defaultTypeColors
	}
	return c
}

// clone returns a deep copy of Config for map-backed fields.
func (c Config) clone() Config {
	cloned := c
	cloned.TypeColors = cloneStringMap(c.TypeColors)
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if len(c.TypeColors) == 0 {
		return fmt.Errorf("typeColors must contain at least one type")
	}
	for name, color := range c.TypeColors {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("typeColors contains empty key")
		}
		if strings.TrimSpace(color) == "" {
			return fmt.Errorf("typeColors color for %q must be non-empty", name)
		}
	}
	if _, ok := c.TypeColors[c.DefaultType]; !ok {
		return fmt.Errorf("defaultType %q is not a key of typeColors", c.DefaultType)
	}
	return nil
}

// typeNames returns the recognized type keys in stable order.
func (c Config) typeNames() []string {
	names := make([]string, 0, len(c.TypeColors))
	for name := range c.TypeColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
