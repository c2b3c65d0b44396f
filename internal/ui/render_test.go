package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/henri123lemoine/periodic/internal/config"
	"github.com/henri123lemoine/periodic/internal/grid"
	"github.com/henri123lemoine/periodic/internal/surface"
)

// putRecord is one Put call seen by recorder.
type putRecord struct {
	row, col int
	text     string
	style    surface.Style
}

// recorder is a Drawer that remembers every write on top of a Canvas.
type recorder struct {
	*surface.Canvas
	puts []putRecord
}

func newRecorder(rows, cols int) *recorder {
	return &recorder{Canvas: surface.NewCanvas(rows, cols)}
}

func (r *recorder) Put(row, col int, text string, st surface.Style) {
	r.puts = append(r.puts, putRecord{row, col, text, st})
	r.Canvas.Put(row, col, text, st)
}

func testPalette() Palette {
	return NewPalette(config.DefaultConfig().Colors)
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"He", 3, "He "},
		{"H", 3, " H "},
		{"Fe", 4, " Fe "},
		{"", 4, "    "},
		{"Iron", 2, "Ir"},
		{"Å", 3, " Å "},
		{"x", 0, ""},
	}

	for _, tt := range tests {
		if got := Center(tt.in, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"1", 3, "  1"},
		{"26", 3, " 26"},
		{"118", 3, "118"},
		{"1234", 3, "234"},
		{"1", 0, ""},
	}

	for _, tt := range tests {
		if got := PadLeft(tt.in, tt.width); got != tt.want {
			t.Errorf("PadLeft(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPaletteColors(t *testing.T) {
	p := testPalette()

	if got := p.SymbolColor("Na", "alkali metal"); got != surface.ColorBlue {
		t.Errorf("alkali metal color = %q", got)
	}
	if got := p.SymbolColor("Xx", "unobtainium"); got != p.Default {
		t.Errorf("unknown category color = %q, want default", got)
	}
	if got := p.SymbolColor("Xx", ""); got != p.Default {
		t.Errorf("empty category color = %q, want default", got)
	}
	// Placeholders ignore any category they are given.
	if got := p.SymbolColor("Ln", "halogen"); got != p.Placeholder {
		t.Errorf("placeholder color = %q, want %q", got, p.Placeholder)
	}
}

func TestNewPaletteCopiesCategories(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPalette(cfg.Colors)
	cfg.Colors.Categories["halogen"] = surface.ColorGreen

	if p.CategoryColor("halogen") != surface.ColorRed {
		t.Error("palette should not alias config maps")
	}
}

func TestDrawCell(t *testing.T) {
	l := config.DefaultConfig().Layout
	p := testPalette()
	c := newRecorder(12, 20)

	DrawCell(c, l, p, grid.Position{Row: 1, Col: 2}, CellContent{Symbol: "Fe", Number: 26, Color: surface.ColorMagenta}, false)

	// Cell (1,2) starts at screen row 4, column 10.
	want := []string{
		"┌───┐",
		"│ 26│",
		"│Fe │",
		"└───┘",
	}
	for i, w := range want {
		got := c.Line(4 + i)[10:]
		if !strings.HasPrefix(got, w) {
			t.Errorf("row %d = %q, want prefix %q", 4+i, got, w)
		}
	}

	if st := c.At(6, 11).Style; st.Fg != surface.ColorMagenta || !st.Bold || st.Reverse {
		t.Errorf("symbol style = %+v", st)
	}
	if st := c.At(4, 10).Style; st != p.Normal() {
		t.Errorf("border style = %+v, want %+v", st, p.Normal())
	}
}

func TestDrawCellPlaceholderHasNoNumber(t *testing.T) {
	l := config.DefaultConfig().Layout
	p := testPalette()
	c := newRecorder(8, 8)

	DrawCell(c, l, p, grid.Position{}, CellContent{Symbol: "Ln", Color: p.Placeholder}, false)

	if got := c.Line(1)[:runeOffset(c.Line(1), 5)]; got != "│   │" {
		t.Errorf("number line = %q, want blank interior", got)
	}
}

// runeOffset returns the byte offset of the n-th rune of s.
func runeOffset(s string, n int) int {
	i := 0
	for off := range s {
		if i == n {
			return off
		}
		i++
	}
	return len(s)
}

func TestDrawCellHighlightDiffers(t *testing.T) {
	l := config.DefaultConfig().Layout
	p := testPalette()
	content := CellContent{Symbol: "O", Number: 8, Color: surface.ColorWhite}

	normal := newRecorder(4, 5)
	DrawCell(normal, l, p, grid.Position{}, content, false)
	highlighted := newRecorder(4, 5)
	DrawCell(highlighted, l, p, grid.Position{}, content, true)

	for row := 0; row < 4; row++ {
		if normal.Line(row) != highlighted.Line(row) {
			t.Errorf("row %d text differs: %q vs %q", row, normal.Line(row), highlighted.Line(row))
		}
	}

	// Border, number and symbol all change style.
	for _, at := range [][2]int{{0, 0}, {1, 3}, {2, 2}} {
		n, h := normal.At(at[0], at[1]).Style, highlighted.At(at[0], at[1]).Style
		if n == h {
			t.Errorf("style at %v identical when highlighted: %+v", at, n)
		}
		if !h.Reverse {
			t.Errorf("highlighted style at %v lacks reverse video", at)
		}
	}
}

func TestDrawDegenerateLayout(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *config.LayoutConfig)
	}{
		{"zero cell width", func(l *config.LayoutConfig) { l.CellWidth = 0 }},
		{"negative cell width", func(l *config.LayoutConfig) { l.CellWidth = -1 }},
		{"very negative cell width", func(l *config.LayoutConfig) { l.CellWidth = -7 }},
		{"zero cell height", func(l *config.LayoutConfig) { l.CellHeight = 0 }},
		{"negative cell height", func(l *config.LayoutConfig) { l.CellHeight = -3 }},
		{"negative panel", func(l *config.LayoutConfig) { l.PanelWidth, l.PanelHeight = -5, -5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := config.DefaultConfig().Layout
			tt.mutate(&l)
			p := testPalette()

			c := newRecorder(40, 120)
			DrawCell(c, l, p, grid.Position{Row: 3, Col: 7}, CellContent{Symbol: "Fe", Number: 26, Color: surface.ColorMagenta}, true)

			Render(c, RenderParams{
				Grid:    grid.New(grid.PeriodicTable),
				Lines:   []DisplayLine{Plain("26"), Colored("Fe", surface.ColorMagenta)},
				Status:  "help",
				Layout:  l,
				Palette: p,
			})
		})
	}
}

func TestDrawPanel(t *testing.T) {
	l := config.DefaultConfig().Layout
	p := testPalette()
	c := newRecorder(20, 60)

	lines := []DisplayLine{
		Plain("26"),
		Plain(""),
		Colored("Fe", surface.ColorMagenta),
	}
	DrawPanel(c, l, p, lines)

	top, left := l.PanelTop, l.PanelLeft
	if got := c.At(top, left).Text; got != GlyphTopLeft {
		t.Errorf("top-left = %q", got)
	}
	if got := c.At(top+l.PanelHeight-1, left+l.PanelWidth-1).Text; got != GlyphBottomRight {
		t.Errorf("bottom-right = %q", got)
	}

	interior := func(row int) string {
		line := []rune(c.Line(row))
		return string(line[left+1 : left+1+l.ContentWidth()])
	}
	if got := interior(top + 1); got != Center("26", 28) {
		t.Errorf("line 0 = %q", got)
	}
	if got := interior(top + 2); got != strings.Repeat(" ", 28) {
		t.Errorf("blank line = %q", got)
	}
	if got := interior(top + 3); got != Center("Fe", 28) {
		t.Errorf("line 2 = %q", got)
	}

	if st := c.At(top+3, left+14).Style; st.Fg != surface.ColorMagenta || !st.Bold {
		t.Errorf("colored line style = %+v", st)
	}
	if st := c.At(top+1, left+14).Style; st != p.Normal() {
		t.Errorf("plain line style = %+v", st)
	}
}

func TestDrawPanelDropsExtraLines(t *testing.T) {
	l := config.DefaultConfig().Layout
	p := testPalette()
	c := newRecorder(20, 60)

	var lines []DisplayLine
	for i := 0; i < l.ContentHeight()+5; i++ {
		lines = append(lines, Plain(fmt.Sprintf("line %d with a very long tail that overflows", i)))
	}
	DrawPanel(c, l, p, lines)

	contentPuts := 0
	for _, put := range c.puts {
		if put.col != l.PanelLeft+1 {
			continue
		}
		contentPuts++
		if put.row <= l.PanelTop || put.row > l.PanelTop+l.ContentHeight() {
			t.Errorf("content write at row %d outside interior", put.row)
		}
		if w := runewidth.StringWidth(put.text); w > l.ContentWidth() {
			t.Errorf("content write %q is %d wide, interior is %d", put.text, w, l.ContentWidth())
		}
	}
	if contentPuts != l.ContentHeight() {
		t.Errorf("drew %d content lines, want %d", contentPuts, l.ContentHeight())
	}

	for _, put := range c.puts {
		end := put.col + runewidth.StringWidth(put.text)
		if put.row < l.PanelTop || put.row >= l.PanelTop+l.PanelHeight ||
			put.col < l.PanelLeft || end > l.PanelLeft+l.PanelWidth {
			t.Errorf("write at (%d,%d) %q escapes the panel", put.row, put.col, put.text)
		}
	}
}

func TestRenderFrame(t *testing.T) {
	cfg := config.DefaultConfig()
	p := testPalette()
	g := grid.New(grid.PeriodicTable)
	maxRow, maxCol := g.BoundingBox()
	rows, cols := cfg.Layout.MinSize(maxRow, maxCol)
	c := newRecorder(rows, cols)

	// Stale content must be cleared.
	c.Canvas.Put(rows-1, cols-1, "X", surface.Style{})

	Render(c, RenderParams{
		Grid:    g,
		Cursor:  grid.Position{Row: 3, Col: 7},
		Cells:   map[string]CellContent{"Fe": {Symbol: "Fe", Number: 26, Color: surface.ColorMagenta}},
		Lines:   []DisplayLine{Plain("26")},
		Status:  "help me",
		Layout:  cfg.Layout,
		Palette: p,
	})

	if got := c.At(rows-1, cols-1).Text; got != " " {
		t.Errorf("stale cell = %q, want cleared", got)
	}

	// Fe at (3,7) is highlighted.
	top, left := CellOrigin(cfg.Layout, grid.Position{Row: 3, Col: 7})
	if !c.At(top, left).Style.Reverse {
		t.Error("cursor cell border should be reversed")
	}
	if c.At(0, 0).Style.Reverse {
		t.Error("H cell should not be highlighted")
	}

	// Cells without content still show their symbol.
	htop, hleft := CellOrigin(cfg.Layout, grid.Position{Row: 0, Col: 17})
	if got := strings.TrimSpace(string([]rune(c.Line(htop + 2))[hleft+1 : hleft+4])); got != "He" {
		t.Errorf("He cell symbol = %q", got)
	}

	if got := c.Line(cfg.Layout.HelpRow(maxRow)); !strings.HasPrefix(got, "help me") {
		t.Errorf("help row = %q", got)
	}
}
