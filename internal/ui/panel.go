package ui

import (
	"github.com/henri123lemoine/periodic/internal/config"
	"github.com/henri123lemoine/periodic/internal/surface"
)

// DisplayLine is one line of the info panel. When Colored is set the text is
// drawn bold in Color instead of the default style.
type DisplayLine struct {
	Text    string
	Color   surface.Color
	Colored bool
}

// Plain returns a line in the default style.
func Plain(text string) DisplayLine {
	return DisplayLine{Text: text}
}

// Colored returns a line drawn in c.
func Colored(text string, c surface.Color) DisplayLine {
	return DisplayLine{Text: text, Color: c, Colored: true}
}

// DrawPanel draws the bordered info panel and up to ContentHeight lines,
// each centred in the interior. Extra lines are dropped.
func DrawPanel(d surface.Drawer, l config.LayoutConfig, p Palette, lines []DisplayLine) {
	drawBox(d, l.PanelTop, l.PanelLeft, l.PanelHeight, l.PanelWidth, p.Normal())

	width, height := l.ContentWidth(), l.ContentHeight()
	if width <= 0 || height <= 0 {
		return
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		st := p.Normal()
		if line.Colored {
			st = Accent(line.Color)
		}
		d.Put(l.PanelTop+1+i, l.PanelLeft+1, Center(line.Text, width), st)
	}
}
