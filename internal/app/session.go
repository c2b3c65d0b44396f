package app

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/periodic/internal/config"
	"github.com/henri123lemoine/periodic/internal/debug"
	"github.com/henri123lemoine/periodic/internal/grid"
	"github.com/henri123lemoine/periodic/internal/surface"
	"github.com/henri123lemoine/periodic/internal/ui"
)

// Status is the event loop state.
type Status int

const (
	StatusRunning Status = iota
	StatusTerminated
)

// Mode selects how keys are interpreted while running.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeFind
)

// Session is the state shared by both backends: the cursor, the input mode
// and everything needed to draw a frame.
type Session struct {
	grid     *grid.Model
	provider Provider
	layout   config.LayoutConfig
	palette  ui.Palette
	keys     KeyMap
	cells    map[string]ui.CellContent
	targets  searchTargets

	cursor grid.Position
	status Status
	mode   Mode
	query  []rune
}

// NewSession creates a session with the cursor on start. If start is not an
// occupied cell the first cell of g is used instead.
func NewSession(cfg *config.Config, g *grid.Model, p Provider, start grid.Position) *Session {
	pal := ui.NewPalette(cfg.Colors)
	s := &Session{
		grid:     g,
		provider: p,
		layout:   cfg.Layout,
		palette:  pal,
		keys:     KeyMapFromConfig(&cfg.Keys),
		cells:    CellContents(g, p, pal),
		targets:  newSearchTargets(g, p),
		cursor:   start,
	}
	if !g.Occupied(start) {
		s.cursor, _ = g.First()
	}
	return s
}

// Cursor returns the selected position.
func (s *Session) Cursor() grid.Position { return s.cursor }

// Symbol returns the entity under the cursor.
func (s *Session) Symbol() string {
	sym, _ := s.grid.EntityAt(s.cursor)
	return sym
}

// Status returns whether the session is still running.
func (s *Session) Status() Status { return s.status }

// Mode returns the current input mode.
func (s *Session) Mode() Mode { return s.mode }

// Query returns the find-mode query.
func (s *Session) Query() string { return string(s.query) }

// MinSize returns the smallest terminal the session can draw on.
func (s *Session) MinSize() (rows, cols int) {
	maxRow, maxCol := s.grid.BoundingBox()
	return s.layout.MinSize(maxRow, maxCol)
}

// CheckSize returns a *TooSmallError when rows x cols cannot hold a frame.
func (s *Session) CheckSize(rows, cols int) error {
	needRows, needCols := s.MinSize()
	if rows < needRows || cols < needCols {
		debug.Log("terminal %dx%d too small, need %dx%d", rows, cols, needRows, needCols)
		return &TooSmallError{Rows: rows, Cols: cols, NeedRows: needRows, NeedCols: needCols}
	}
	return nil
}

// HandleKey dispatches one key press and returns the resulting status.
// Unrecognised keys are ignored.
func (s *Session) HandleKey(k fmt.Stringer) Status {
	if s.status == StatusTerminated {
		return s.status
	}

	switch s.mode {
	case ModeFind:
		s.handleFindKey(k)
	default:
		s.handleBrowseKey(k)
	}

	debug.Log("key %q -> cursor %d,%d mode %d status %d", k.String(), s.cursor.Row, s.cursor.Col, s.mode, s.status)
	return s.status
}

func (s *Session) handleBrowseKey(k fmt.Stringer) {
	switch {
	case key.Matches(k, s.keys.ForceQuit, s.keys.Quit):
		s.status = StatusTerminated
	case key.Matches(k, s.keys.Left):
		s.cursor = s.grid.Move(s.cursor, grid.Left)
	case key.Matches(k, s.keys.Right):
		s.cursor = s.grid.Move(s.cursor, grid.Right)
	case key.Matches(k, s.keys.Up):
		s.cursor = s.grid.Move(s.cursor, grid.Up)
	case key.Matches(k, s.keys.Down):
		s.cursor = s.grid.Move(s.cursor, grid.Down)
	case key.Matches(k, s.keys.Find):
		s.mode = ModeFind
		s.query = s.query[:0]
	}
}

func (s *Session) handleFindKey(k fmt.Stringer) {
	switch {
	case key.Matches(k, s.keys.ForceQuit):
		s.status = StatusTerminated
	case key.Matches(k, s.keys.Cancel):
		s.mode = ModeBrowse
	case key.Matches(k, s.keys.Accept):
		if pos, _, ok := s.bestMatch(); ok {
			s.cursor = pos
		}
		s.mode = ModeBrowse
	case key.Matches(k, s.keys.Erase):
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
		}
	default:
		str := k.String()
		if utf8.RuneCountInString(str) != 1 {
			return
		}
		r, _ := utf8.DecodeRuneInString(str)
		if unicode.IsPrint(r) {
			s.query = append(s.query, r)
		}
	}
}

// bestMatch returns the position and label of the best fuzzy match for the
// query.
func (s *Session) bestMatch() (grid.Position, string, bool) {
	if len(s.query) == 0 {
		return grid.Position{}, "", false
	}
	matches := fuzzy.FindFrom(string(s.query), s.targets)
	if len(matches) == 0 {
		return grid.Position{}, "", false
	}
	t := s.targets[matches[0].Index]
	return t.pos, t.label(), true
}

// StatusLine returns the text under the table: the help line, or the find
// prompt with the current best match.
func (s *Session) StatusLine() string {
	if s.mode != ModeFind {
		return s.keys.HelpLine()
	}
	prompt := "/" + string(s.query)
	if _, label, ok := s.bestMatch(); ok {
		return prompt + "  → " + label
	}
	if len(s.query) > 0 {
		return prompt + "  → no match"
	}
	return prompt
}

// InfoLines returns the info panel lines for the selected entity.
func (s *Session) InfoLines() []ui.DisplayLine {
	return InfoLines(s.Symbol(), s.provider, s.palette)
}

// Draw renders one full frame onto d.
func (s *Session) Draw(d surface.Drawer) {
	ui.Render(d, ui.RenderParams{
		Grid:    s.grid,
		Cursor:  s.cursor,
		Cells:   s.cells,
		Lines:   s.InfoLines(),
		Status:  s.StatusLine(),
		Layout:  s.layout,
		Palette: s.palette,
	})
}

// searchTarget is one cell as seen by find mode.
type searchTarget struct {
	pos    grid.Position
	symbol string
	name   string
}

func (t searchTarget) label() string {
	if t.name == "" {
		return t.symbol
	}
	return fmt.Sprintf("%s (%s)", t.name, t.symbol)
}

// searchTargets implements fuzzy.Source over the occupied cells.
type searchTargets []searchTarget

func newSearchTargets(g *grid.Model, p Provider) searchTargets {
	records := g.Records()
	targets := make(searchTargets, 0, len(records))
	for _, r := range records {
		t := searchTarget{pos: r.Pos, symbol: r.Symbol}
		if grid.IsPlaceholder(r.Symbol) {
			t.name = grid.PlaceholderName(r.Symbol)
		} else {
			t.name, _ = p.Name(r.Symbol)
		}
		targets = append(targets, t)
	}
	return targets
}

func (t searchTargets) String(i int) string {
	return t[i].symbol + " " + t[i].name
}

func (t searchTargets) Len() int {
	return len(t)
}
