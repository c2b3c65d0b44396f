// Package elements provides per-symbol chemical element properties.
package elements

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed elements.toml
var embeddedTable []byte

// ErrNotFound is returned by Lookup for unknown symbols.
var ErrNotFound = errors.New("element not found")

// Units and models understood by the accessors.
const (
	UnitDalton    = "u"
	UnitDaltonAlt = "Da"
	UnitAngstrom  = "Å"
	UnitPicometre = "pm"
	ScalePauling  = "pauling"
	BondSingle    = "single"
	ModelCordero  = "cordero"
)

const picometresPerAngstrom = 100.0

// Element is one row of the table. Pointer fields are optional.
type Element struct {
	Symbol            string   `toml:"symbol"`
	Name              string   `toml:"name"`
	Number            int      `toml:"number"`
	Period            int      `toml:"period"`
	Group             int      `toml:"group"`
	Mass              float64  `toml:"mass"`
	Classification    string   `toml:"classification"`
	Electronegativity *float64 `toml:"electronegativity"`
	VdwRadius         *float64 `toml:"vdw_radius"`
	CovalentRadius    *float64 `toml:"covalent_radius"`
}

type tableFile struct {
	Elements []Element `toml:"element"`
}

// Table is an immutable symbol-indexed element table.
type Table struct {
	bySymbol map[string]Element
}

// Load decodes the embedded element table.
func Load() (*Table, error) {
	return Parse(embeddedTable)
}

// Parse decodes a TOML element table.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode element table: %w", err)
	}

	t := &Table{bySymbol: make(map[string]Element, len(f.Elements))}
	for i, e := range f.Elements {
		if e.Symbol == "" {
			return nil, fmt.Errorf("element %d: missing symbol", i)
		}
		if _, dup := t.bySymbol[e.Symbol]; dup {
			return nil, fmt.Errorf("element %s: duplicate symbol", e.Symbol)
		}
		t.bySymbol[e.Symbol] = e
	}
	return t, nil
}

// Len returns the number of elements.
func (t *Table) Len() int {
	return len(t.bySymbol)
}

// Lookup returns the full record for symbol.
func (t *Table) Lookup(symbol string) (Element, error) {
	e, ok := t.bySymbol[symbol]
	if !ok {
		return Element{}, fmt.Errorf("%q: %w", symbol, ErrNotFound)
	}
	return e, nil
}

// AtomicNumber returns the atomic number of symbol.
func (t *Table) AtomicNumber(symbol string) (int, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.Number <= 0 {
		return 0, false
	}
	return e.Number, true
}

// Period returns the period (row) of symbol.
func (t *Table) Period(symbol string) (int, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.Period <= 0 {
		return 0, false
	}
	return e.Period, true
}

// Group returns the IUPAC group of symbol.
func (t *Table) Group(symbol string) (int, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.Group <= 0 {
		return 0, false
	}
	return e.Group, true
}

// Name returns the English name of symbol.
func (t *Table) Name(symbol string) (string, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.Name == "" {
		return "", false
	}
	return e.Name, true
}

// Classification returns the category used for colouring, e.g. "noble gas".
func (t *Table) Classification(symbol string) (string, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.Classification == "" {
		return "", false
	}
	return e.Classification, true
}

// Mass returns the standard atomic weight in unit ("u" or "Da").
func (t *Table) Mass(symbol, unit string) (float64, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.Mass <= 0 {
		return 0, false
	}
	switch unit {
	case UnitDalton, UnitDaltonAlt:
		return e.Mass, true
	}
	return 0, false
}

// Electronegativity returns the electronegativity on scale. Only the
// Pauling scale is tabulated.
func (t *Table) Electronegativity(symbol, scale string) (float64, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.Electronegativity == nil || scale != ScalePauling {
		return 0, false
	}
	return *e.Electronegativity, true
}

// VdwRadius returns the van der Waals radius in unit ("pm" or "Å").
func (t *Table) VdwRadius(symbol, unit string) (float64, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.VdwRadius == nil {
		return 0, false
	}
	return convertLength(*e.VdwRadius, unit)
}

// CovalentRadius returns the covalent radius for the given bond order and
// model in unit. Only single-bond Cordero radii are tabulated.
func (t *Table) CovalentRadius(symbol, bondOrder, model, unit string) (float64, bool) {
	e, err := t.Lookup(symbol)
	if err != nil || e.CovalentRadius == nil {
		return 0, false
	}
	if bondOrder != BondSingle || model != ModelCordero {
		return 0, false
	}
	return convertLength(*e.CovalentRadius, unit)
}

func convertLength(pm float64, unit string) (float64, bool) {
	switch unit {
	case UnitPicometre:
		return pm, true
	case UnitAngstrom:
		return pm / picometresPerAngstrom, true
	}
	return 0, false
}
