package surface

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Cell is one character position of a Canvas. A wide rune occupies its own
// cell and leaves an empty continuation cell after it.
type Cell struct {
	Text  string
	Style Style
}

// Canvas is an in-memory Drawer. Render turns it into styled terminal text.
type Canvas struct {
	rows, cols int
	cells      []Cell
}

// NewCanvas returns a blank canvas. Negative sizes are treated as zero.
func NewCanvas(rows, cols int) *Canvas {
	rows, cols = max(rows, 0), max(cols, 0)
	c := &Canvas{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	c.Clear()
	return c
}

func (c *Canvas) Size() (rows, cols int) {
	return c.rows, c.cols
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = Cell{Text: " "}
	}
}

// Put writes text starting at (row, col), one rune per cell.
func (c *Canvas) Put(row, col int, text string, st Style) {
	if row < 0 || row >= c.rows {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= c.cols {
			return
		}
		if col >= 0 {
			c.cells[row*c.cols+col] = Cell{Text: string(r), Style: st}
			for k := 1; k < w && col+k < c.cols; k++ {
				c.cells[row*c.cols+col+k] = Cell{Style: st}
			}
		}
		col += w
	}
}

// At returns the cell at (row, col). Out of range positions return an empty
// cell.
func (c *Canvas) At(row, col int) Cell {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols {
		return Cell{}
	}
	return c.cells[row*c.cols+col]
}

// Line returns the unstyled text of row.
func (c *Canvas) Line(row int) string {
	if row < 0 || row >= c.rows {
		return ""
	}
	var b strings.Builder
	for _, cell := range c.cells[row*c.cols : (row+1)*c.cols] {
		b.WriteString(cell.Text)
	}
	return b.String()
}

// Render returns the canvas as newline-separated rows, styled with lipgloss.
// Runs of equally styled cells are rendered together.
func (c *Canvas) Render() string {
	lines := make([]string, c.rows)
	for row := 0; row < c.rows; row++ {
		var b strings.Builder
		var run strings.Builder
		var runStyle Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(lipglossStyle(runStyle).Render(run.String()))
			run.Reset()
		}
		for col := 0; col < c.cols; col++ {
			cell := c.cells[row*c.cols+col]
			if cell.Style != runStyle {
				flush()
				runStyle = cell.Style
			}
			run.WriteString(cell.Text)
		}
		flush()
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

func lipglossStyle(st Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if i := st.Fg.ANSI(); i >= 0 {
		s = s.Foreground(lipgloss.Color(strconv.Itoa(i)))
	}
	if st.Bold {
		s = s.Bold(true)
	}
	if st.Reverse {
		s = s.Reverse(true)
	}
	return s
}
