package grid

import "sort"

// Position is a (row, column) coordinate in the table.
type Position struct {
	Row int
	Col int
}

// Record is one occupied cell of the table.
type Record struct {
	Pos    Position
	Symbol string
}

// Entry is a literal position→symbol pair used to build a Model.
type Entry struct {
	Row    int
	Col    int
	Symbol string
}

// Model is an immutable sparse grid. Records are stored in an arena and
// indexed by position.
type Model struct {
	records []Record
	index   map[Position]int
	maxRow  int
	maxCol  int
}

// New builds a Model from entries. A later entry for the same position
// replaces an earlier one. Negative coordinates are skipped.
func New(entries []Entry) *Model {
	m := &Model{
		records: make([]Record, 0, len(entries)),
		index:   make(map[Position]int, len(entries)),
	}
	for _, e := range entries {
		if e.Row < 0 || e.Col < 0 {
			continue
		}
		pos := Position{Row: e.Row, Col: e.Col}
		if i, ok := m.index[pos]; ok {
			m.records[i].Symbol = e.Symbol
			continue
		}
		m.index[pos] = len(m.records)
		m.records = append(m.records, Record{Pos: pos, Symbol: e.Symbol})
		if e.Row > m.maxRow {
			m.maxRow = e.Row
		}
		if e.Col > m.maxCol {
			m.maxCol = e.Col
		}
	}
	sort.Slice(m.records, func(i, j int) bool {
		a, b := m.records[i].Pos, m.records[j].Pos
		if a.Row != b.Row {
			return a.Row < b.Row
		}
		return a.Col < b.Col
	})
	for i, r := range m.records {
		m.index[r.Pos] = i
	}
	return m
}

// Occupied reports whether pos holds an entity.
func (m *Model) Occupied(pos Position) bool {
	_, ok := m.index[pos]
	return ok
}

// EntityAt returns the symbol at pos.
func (m *Model) EntityAt(pos Position) (string, bool) {
	i, ok := m.index[pos]
	if !ok {
		return "", false
	}
	return m.records[i].Symbol, true
}

// BoundingBox returns the largest row and column among occupied positions.
func (m *Model) BoundingBox() (maxRow, maxCol int) {
	return m.maxRow, m.maxCol
}

// Records returns all occupied cells in row-major order.
func (m *Model) Records() []Record {
	out := make([]Record, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of occupied cells.
func (m *Model) Len() int {
	return len(m.records)
}

// First returns the top-left occupied position, scanning row-major.
func (m *Model) First() (Position, bool) {
	if len(m.records) == 0 {
		return Position{}, false
	}
	return m.records[0].Pos, true
}

// Find returns the position of symbol.
func (m *Model) Find(symbol string) (Position, bool) {
	for _, r := range m.records {
		if r.Symbol == symbol {
			return r.Pos, true
		}
	}
	return Position{}, false
}
