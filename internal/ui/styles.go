// Package ui handles terminal UI rendering.
package ui

import (
	"github.com/henri123lemoine/periodic/internal/config"
	"github.com/henri123lemoine/periodic/internal/grid"
	"github.com/henri123lemoine/periodic/internal/surface"
)

// Box-drawing glyphs
const (
	GlyphTopLeft     = "┌"
	GlyphTopRight    = "┐"
	GlyphBottomLeft  = "└"
	GlyphBottomRight = "┘"
	GlyphHorizontal  = "─"
	GlyphVertical    = "│"
)

// Palette resolves colours and styles for cells and panel lines.
type Palette struct {
	Default     surface.Color
	Placeholder surface.Color
	Highlight   surface.Color
	Categories  map[string]surface.Color
}

// NewPalette builds a Palette from the colour configuration.
func NewPalette(c config.ColorsConfig) Palette {
	cats := make(map[string]surface.Color, len(c.Categories))
	for k, v := range c.Categories {
		cats[k] = v
	}
	return Palette{
		Default:     c.Default,
		Placeholder: c.Placeholder,
		Highlight:   c.Highlight,
		Categories:  cats,
	}
}

// CategoryColor returns the colour for a classification, falling back to
// the default colour for unknown or empty categories.
func (p Palette) CategoryColor(category string) surface.Color {
	if c, ok := p.Categories[category]; ok && category != "" {
		return c
	}
	return p.Default
}

// SymbolColor returns the colour for a table cell's symbol. Placeholders
// always use the placeholder colour.
func (p Palette) SymbolColor(symbol, category string) surface.Color {
	if grid.IsPlaceholder(symbol) {
		return p.Placeholder
	}
	return p.CategoryColor(category)
}

// Normal is the base style for borders and plain text.
func (p Palette) Normal() surface.Style {
	return surface.Style{Fg: p.Default, Bold: true}
}

// Selected is the style for the highlighted cell's border and number.
func (p Palette) Selected() surface.Style {
	return surface.Style{Fg: p.Highlight, Bold: true, Reverse: true}
}

// Accent is the style for text drawn in colour c.
func Accent(c surface.Color) surface.Style {
	return surface.Style{Fg: c, Bold: true}
}
