package grid

// Direction is a cursor movement request.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Move returns the nearest occupied position from pos in direction d,
// scanning one step at a time along a single axis toward the bounding box
// edge. If nothing is found pos is returned unchanged. There is no wrap.
//
// Move is not symmetric: a Right followed by a Left can land elsewhere when
// the rows in between differ in occupancy.
//
// Positions outside the bounding box are accepted; scans are clamped to it.
func (m *Model) Move(pos Position, d Direction) Position {
	switch d {
	case Left:
		for col := min(pos.Col-1, m.maxCol); col >= 0; col-- {
			if p := (Position{Row: pos.Row, Col: col}); m.Occupied(p) {
				return p
			}
		}
	case Right:
		if pos.Col >= m.maxCol {
			return pos
		}
		for col := pos.Col + 1; col <= m.maxCol; col++ {
			if p := (Position{Row: pos.Row, Col: col}); m.Occupied(p) {
				return p
			}
		}
	case Up:
		for row := min(pos.Row-1, m.maxRow); row >= 0; row-- {
			if p := (Position{Row: row, Col: pos.Col}); m.Occupied(p) {
				return p
			}
		}
	case Down:
		if pos.Row >= m.maxRow {
			return pos
		}
		for row := pos.Row + 1; row <= m.maxRow; row++ {
			if p := (Position{Row: row, Col: pos.Col}); m.Occupied(p) {
				return p
			}
		}
	}
	return pos
}
