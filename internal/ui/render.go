package ui

import (
	"github.com/henri123lemoine/periodic/internal/config"
	"github.com/henri123lemoine/periodic/internal/grid"
	"github.com/henri123lemoine/periodic/internal/surface"
)

// RenderParams contains all parameters needed for rendering one frame.
type RenderParams struct {
	Grid    *grid.Model
	Cursor  grid.Position
	Cells   map[string]CellContent
	Lines   []DisplayLine
	Status  string
	Layout  config.LayoutConfig
	Palette Palette
}

// Render clears d and draws every cell, the info panel and the status line.
func Render(d surface.Drawer, p RenderParams) {
	d.Clear()

	for _, r := range p.Grid.Records() {
		c, ok := p.Cells[r.Symbol]
		if !ok {
			c = CellContent{Symbol: r.Symbol, Color: p.Palette.SymbolColor(r.Symbol, "")}
		}
		DrawCell(d, p.Layout, p.Palette, r.Pos, c, r.Pos == p.Cursor)
	}

	DrawPanel(d, p.Layout, p.Palette, p.Lines)

	maxRow, _ := p.Grid.BoundingBox()
	d.Put(p.Layout.HelpRow(maxRow), 0, p.Status, surface.Style{})
}
