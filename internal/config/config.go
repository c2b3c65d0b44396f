// Package config handles periodic configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/periodic/internal/surface"
)

// Backends selectable with ui.backend.
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// Config represents periodic configuration.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	Colors ColorsConfig `toml:"colors"`
	Keys   KeysConfig   `toml:"keys"`
	UI     UIConfig     `toml:"ui"`
}

// LayoutConfig holds the cell and info panel geometry.
type LayoutConfig struct {
	// Interior size of one table cell (border excluded)
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`

	// Info panel position and outer size (border included)
	PanelTop    int `toml:"panel_top"`
	PanelLeft   int `toml:"panel_left"`
	PanelWidth  int `toml:"panel_width"`
	PanelHeight int `toml:"panel_height"`
}

// ColorsConfig maps element categories to palette colours.
type ColorsConfig struct {
	Default     surface.Color            `toml:"default"`
	Placeholder surface.Color            `toml:"placeholder"`
	Highlight   surface.Color            `toml:"highlight"`
	Categories  map[string]surface.Color `toml:"categories"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Left  string `toml:"left"`
	Right string `toml:"right"`
	Up    string `toml:"up"`
	Down  string `toml:"down"`
	Find  string `toml:"find"`
	Quit  string `toml:"quit"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Terminal backend: "bubbletea" or "tcell"
	Backend string `toml:"backend"`

	// Restore the last selected cell on start
	RememberCursor bool `toml:"remember_cursor"`
}

// CellTotalWidth is the cell width including both borders.
func (l LayoutConfig) CellTotalWidth() int { return l.CellWidth + 2 }

// CellTotalHeight is the cell height including both borders.
func (l LayoutConfig) CellTotalHeight() int { return l.CellHeight + 2 }

// ContentWidth is the info panel interior width.
func (l LayoutConfig) ContentWidth() int { return l.PanelWidth - 2 }

// ContentHeight is the info panel interior height.
func (l LayoutConfig) ContentHeight() int { return l.PanelHeight - 2 }

// HelpRow is the screen row of the help line for a grid whose largest row
// index is maxRow.
func (l LayoutConfig) HelpRow(maxRow int) int {
	return (maxRow+1)*l.CellTotalHeight() + 1
}

// MinSize returns the smallest terminal that fits the grid, the help line
// and the info panel.
func (l LayoutConfig) MinSize(maxRow, maxCol int) (rows, cols int) {
	rows = max(l.HelpRow(maxRow)+1, l.PanelTop+l.PanelHeight+2)
	cols = max((maxCol+1)*l.CellTotalWidth(), l.PanelLeft+l.PanelWidth+2)
	return rows, cols
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			CellWidth:   3,
			CellHeight:  2,
			PanelTop:    1,
			PanelLeft:   20,
			PanelWidth:  30,
			PanelHeight: 10,
		},
		Colors: ColorsConfig{
			Default:     surface.ColorWhite,
			Placeholder: surface.ColorCyan,
			Highlight:   surface.ColorWhite,
			Categories: map[string]surface.Color{
				"alkali metal":          surface.ColorBlue,
				"alkaline earth metal":  surface.ColorGreen,
				"transition metal":      surface.ColorMagenta,
				"post-transition metal": surface.ColorYellow,
				"metalloid":             surface.ColorCyan,
				"nonmetal":              surface.ColorWhite,
				"halogen":               surface.ColorRed,
				"noble gas":             surface.ColorBlue,
			},
		},
		Keys: KeysConfig{
			Left:  "left,h",
			Right: "right,l",
			Up:    "up,k",
			Down:  "down,j",
			Find:  "/",
			Quit:  "q,ctrl+c",
		},
		UI: UIConfig{
			Backend:        BackendBubbleTea,
			RememberCursor: false,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/periodic/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "periodic", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "periodic", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "periodic", "config.toml")
	}
	return filepath.Join(configDir, "periodic", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file. Category maps
	// merge key by key.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	geometry := []struct {
		name  string
		value int
		min   int
	}{
		{"layout.cell_width", c.Layout.CellWidth, 1},
		{"layout.cell_height", c.Layout.CellHeight, 2},
		{"layout.panel_top", c.Layout.PanelTop, 0},
		{"layout.panel_left", c.Layout.PanelLeft, 0},
		{"layout.panel_width", c.Layout.PanelWidth, 3},
		{"layout.panel_height", c.Layout.PanelHeight, 3},
	}
	for _, g := range geometry {
		if g.value < g.min {
			warnings = append(warnings, fmt.Sprintf("Invalid value for %s: %d (minimum %d)", g.name, g.value, g.min))
		}
	}

	colors := []struct {
		name  string
		value surface.Color
	}{
		{"colors.default", c.Colors.Default},
		{"colors.placeholder", c.Colors.Placeholder},
		{"colors.highlight", c.Colors.Highlight},
	}
	categories := make([]string, 0, len(c.Colors.Categories))
	for name := range c.Colors.Categories {
		categories = append(categories, name)
	}
	sort.Strings(categories)
	for _, name := range categories {
		colors = append(colors, struct {
			name  string
			value surface.Color
		}{"colors.categories." + name, c.Colors.Categories[name]})
	}
	for _, col := range colors {
		if !col.value.Valid() {
			warnings = append(warnings, fmt.Sprintf("Unknown color for %s: %s", col.name, col.value))
		}
	}

	keys := []struct {
		name  string
		value string
	}{
		{"keys.left", c.Keys.Left},
		{"keys.right", c.Keys.Right},
		{"keys.up", c.Keys.Up},
		{"keys.down", c.Keys.Down},
		{"keys.find", c.Keys.Find},
		{"keys.quit", c.Keys.Quit},
	}
	for _, k := range keys {
		if len(ParseKeys(k.value)) == 0 {
			warnings = append(warnings, fmt.Sprintf("No keys bound for %s", k.name))
		}
	}

	if c.UI.Backend != "" &&
		c.UI.Backend != BackendBubbleTea &&
		c.UI.Backend != BackendTcell {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.backend: %s (expected bubbletea or tcell)", c.UI.Backend))
	}

	return warnings
}

// ParseKeys parses a comma-separated list of keys.
func ParseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
