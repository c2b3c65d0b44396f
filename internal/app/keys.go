package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/periodic/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	// Actions
	Find key.Binding
	Quit key.Binding

	// Find mode
	Accept    key.Binding
	Cancel    key.Binding
	Erase     key.Binding
	ForceQuit key.Binding

	// Label for the movement keys in the help line
	moveHelp string
}

const defaultMoveHelp = "Arrow keys or hjkl"

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Find: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "jump"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Erase: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "erase"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		moveHelp: defaultMoveHelp,
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()
	defaults := config.DefaultConfig().Keys
	custom := false

	bind := func(b *key.Binding, value, fallback, desc string) {
		keys := config.ParseKeys(value)
		if len(keys) == 0 || value == fallback {
			return
		}
		*b = key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		)
	}

	for _, nav := range []struct {
		b        *key.Binding
		value    string
		fallback string
		desc     string
	}{
		{&km.Left, cfg.Left, defaults.Left, "left"},
		{&km.Right, cfg.Right, defaults.Right, "right"},
		{&km.Up, cfg.Up, defaults.Up, "up"},
		{&km.Down, cfg.Down, defaults.Down, "down"},
	} {
		if len(config.ParseKeys(nav.value)) > 0 && nav.value != nav.fallback {
			custom = true
		}
		bind(nav.b, nav.value, nav.fallback, nav.desc)
	}
	bind(&km.Find, cfg.Find, defaults.Find, "find")
	bind(&km.Quit, cfg.Quit, defaults.Quit, "quit")

	if custom {
		km.moveHelp = strings.Join([]string{
			km.Left.Help().Key,
			km.Right.Help().Key,
			km.Up.Help().Key,
			km.Down.Help().Key,
		}, " ")
	}

	return km
}

// HelpLine returns the one-line instructions shown below the table.
func (k KeyMap) HelpLine() string {
	move := k.moveHelp
	if move == "" {
		move = defaultMoveHelp
	}
	return fmt.Sprintf("[%s: move]  [%s: find]  [%s: quit]",
		move, firstKey(k.Find), firstKey(k.Quit))
}

func firstKey(b key.Binding) string {
	if keys := b.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return b.Help().Key
}
