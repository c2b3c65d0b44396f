package surface

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Terminal implements Surface on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	done   bool
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalFrom(s)
}

// NewTerminalFrom initialises s and wraps it. Tests pass a simulation screen.
func NewTerminalFrom(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return &Terminal{screen: s}, nil
}

func (t *Terminal) Size() (rows, cols int) {
	w, h := t.screen.Size()
	return h, w
}

func (t *Terminal) Put(row, col int, text string, st Style) {
	style := tcellStyle(st)
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		t.screen.SetContent(col, row, r, nil, style)
		col += w
	}
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) Fini() {
	if t.done {
		return
	}
	t.done = true
	t.screen.Fini()
}

// PollKey waits for a key event. Resizes are absorbed with a full redraw.
func (t *Terminal) PollKey() (Key, bool) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return "", false
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			return keyName(ev), true
		}
	}
}

func keyName(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyRune:
		return Key(string(ev.Rune()))
	}
	return Key(ev.Name())
}

func tcellStyle(st Style) tcell.Style {
	style := tcell.StyleDefault
	if i := st.Fg.ANSI(); i >= 0 {
		style = style.Foreground(tcell.PaletteColor(i))
	}
	return style.Bold(st.Bold).Reverse(st.Reverse)
}
