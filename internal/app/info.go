package app

import (
	"fmt"
	"strconv"

	"github.com/henri123lemoine/periodic/internal/elements"
	"github.com/henri123lemoine/periodic/internal/grid"
	"github.com/henri123lemoine/periodic/internal/ui"
)

// Provider supplies per-element fields. Every accessor reports false when
// the symbol is unknown or the field does not apply.
type Provider interface {
	AtomicNumber(symbol string) (int, bool)
	Period(symbol string) (int, bool)
	Group(symbol string) (int, bool)
	Name(symbol string) (string, bool)
	Classification(symbol string) (string, bool)
	Mass(symbol, unit string) (float64, bool)
	Electronegativity(symbol, scale string) (float64, bool)
	VdwRadius(symbol, unit string) (float64, bool)
	CovalentRadius(symbol, bondOrder, model, unit string) (float64, bool)
}

var _ Provider = (*elements.Table)(nil)

// InfoLines builds the info panel lines for symbol. Absent fields become
// blank lines. Only the symbol and name lines carry the category colour.
func InfoLines(symbol string, p Provider, pal ui.Palette) []ui.DisplayLine {
	if grid.IsPlaceholder(symbol) {
		return []ui.DisplayLine{
			ui.Plain(""),
			ui.Plain(""),
			ui.Plain(""),
			ui.Plain(grid.PlaceholderName(symbol)),
			ui.Plain("not individually shown."),
			ui.Plain(""),
			ui.Plain(""),
			ui.Plain(""),
			ui.Plain(""),
		}
	}

	var number, periodGroup, mass, radii, electroneg string

	if z, ok := p.AtomicNumber(symbol); ok {
		number = strconv.Itoa(z)
	}
	period, okP := p.Period(symbol)
	group, okG := p.Group(symbol)
	if okP && okG {
		periodGroup = fmt.Sprintf("Period %d Group %d", period, group)
	}
	name, _ := p.Name(symbol)
	if m, ok := p.Mass(symbol, elements.UnitDalton); ok {
		mass = fmt.Sprintf("%.3f amu", m)
	}
	class, _ := p.Classification(symbol)
	cov, okC := p.CovalentRadius(symbol, elements.BondSingle, elements.ModelCordero, elements.UnitAngstrom)
	vdw, okV := p.VdwRadius(symbol, elements.UnitAngstrom)
	if okC && okV {
		radii = fmt.Sprintf("Coval: %.2f Å vdW: %.2f Å", cov, vdw)
	}
	if en, ok := p.Electronegativity(symbol, elements.ScalePauling); ok {
		electroneg = fmt.Sprintf("Electroneg: %.2f", en)
	}

	color := pal.CategoryColor(class)
	return []ui.DisplayLine{
		ui.Plain(number),
		ui.Plain(periodGroup),
		ui.Colored(symbol, color),
		ui.Colored(name, color),
		ui.Plain(mass),
		ui.Plain(class),
		ui.Plain(radii),
		ui.Plain(electroneg),
		ui.Plain(""),
	}
}

// CellContents resolves what every cell of g shows.
func CellContents(g *grid.Model, p Provider, pal ui.Palette) map[string]ui.CellContent {
	cells := make(map[string]ui.CellContent, g.Len())
	for _, r := range g.Records() {
		c := ui.CellContent{Symbol: r.Symbol}
		var class string
		if !grid.IsPlaceholder(r.Symbol) {
			c.Number, _ = p.AtomicNumber(r.Symbol)
			class, _ = p.Classification(r.Symbol)
		}
		c.Color = pal.SymbolColor(r.Symbol, class)
		cells[r.Symbol] = c
	}
	return cells
}
