// Package surface defines the character-cell display the renderers draw on
// and the input it delivers.
package surface

// Color is a named terminal palette entry. The zero value is the
// terminal's default foreground.
type Color string

// Palette colours. Each maps to one of the eight basic ANSI colours.
const (
	ColorDefault Color = ""
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorGreen   Color = "green"
	ColorYellow  Color = "yellow"
	ColorBlue    Color = "blue"
	ColorMagenta Color = "magenta"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
)

var ansiIndex = map[Color]int{
	ColorBlack:   0,
	ColorRed:     1,
	ColorGreen:   2,
	ColorYellow:  3,
	ColorBlue:    4,
	ColorMagenta: 5,
	ColorCyan:    6,
	ColorWhite:   7,
}

// ANSI returns the basic ANSI index of c, or -1 for the default colour or an
// unknown name.
func (c Color) ANSI() int {
	if i, ok := ansiIndex[c]; ok {
		return i
	}
	return -1
}

// Valid reports whether c is the default colour or a known palette name.
func (c Color) Valid() bool {
	return c == ColorDefault || c.ANSI() >= 0
}

// Style is the attribute set applied to written text.
type Style struct {
	Fg      Color
	Bold    bool
	Reverse bool
}

// Key is a key press named the way bubbletea names them: "left", "enter",
// "ctrl+c", or the typed character itself.
type Key string

func (k Key) String() string { return string(k) }

// Drawer is a writable grid of character cells addressed by (row, col).
// Writes outside the grid are clipped.
type Drawer interface {
	Size() (rows, cols int)
	Put(row, col int, text string, st Style)
	Clear()
}

// Surface is a Drawer attached to a terminal.
type Surface interface {
	Drawer

	// Show flushes pending writes.
	Show()

	// PollKey blocks for the next key press. It reports false once the
	// surface can no longer deliver input.
	PollKey() (Key, bool)

	HideCursor()

	// Fini restores the terminal. It is safe to call more than once.
	Fini()
}
