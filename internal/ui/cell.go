package ui

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/henri123lemoine/periodic/internal/config"
	"github.com/henri123lemoine/periodic/internal/grid"
	"github.com/henri123lemoine/periodic/internal/surface"
)

// CellContent is what one table cell shows.
type CellContent struct {
	Symbol string
	Number int // 0 when the entity has no atomic number
	Color  surface.Color
}

// CellOrigin returns the screen (row, col) of the top-left corner of the
// cell at pos.
func CellOrigin(l config.LayoutConfig, pos grid.Position) (row, col int) {
	return pos.Row * l.CellTotalHeight(), pos.Col * l.CellTotalWidth()
}

// DrawCell draws the bordered cell for pos. The first interior line holds
// the right-justified number, the second the centred symbol. A cell with no
// interior gets only what fits of its border.
func DrawCell(d surface.Drawer, l config.LayoutConfig, p Palette, pos grid.Position, c CellContent, highlight bool) {
	top, left := CellOrigin(l, pos)

	frame := p.Normal()
	if highlight {
		frame = p.Selected()
	}
	drawBox(d, top, left, l.CellTotalHeight(), l.CellTotalWidth(), frame)

	inner := l.CellWidth
	if inner <= 0 || l.CellHeight <= 0 {
		return
	}
	number := strings.Repeat(" ", inner)
	if c.Number > 0 {
		number = PadLeft(strconv.Itoa(c.Number), inner)
	}
	d.Put(top+1, left+1, number, frame)

	symbol := Accent(c.Color)
	symbol.Reverse = highlight
	d.Put(top+2, left+1, Center(c.Symbol, inner), symbol)

	for row := top + 3; row <= top+l.CellHeight; row++ {
		d.Put(row, left+1, strings.Repeat(" ", inner), frame)
	}
}

// drawBox draws a border of the given outer size. The interior is not
// touched.
func drawBox(d surface.Drawer, top, left, height, width int, st surface.Style) {
	if height < 2 || width < 2 {
		return
	}
	span := strings.Repeat(GlyphHorizontal, width-2)
	d.Put(top, left, GlyphTopLeft+span+GlyphTopRight, st)
	for row := top + 1; row < top+height-1; row++ {
		d.Put(row, left, GlyphVertical, st)
		d.Put(row, left+width-1, GlyphVertical, st)
	}
	d.Put(top+height-1, left, GlyphBottomLeft+span+GlyphBottomRight, st)
}

// Center pads s on both sides to width display columns. An odd remainder
// goes on the right. Text wider than width is truncated.
func Center(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = runewidth.Truncate(s, width, "")
	pad := width - runewidth.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// PadLeft right-justifies s within width display columns, truncating from
// the left when s is too wide.
func PadLeft(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w > width {
		r := []rune(s)
		for runewidth.StringWidth(string(r)) > width {
			r = r[1:]
		}
		return string(r)
	}
	return strings.Repeat(" ", width-w) + s
}
