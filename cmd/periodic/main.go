package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/periodic/internal/app"
	"github.com/henri123lemoine/periodic/internal/cache"
	"github.com/henri123lemoine/periodic/internal/config"
	"github.com/henri123lemoine/periodic/internal/debug"
	"github.com/henri123lemoine/periodic/internal/elements"
	"github.com/henri123lemoine/periodic/internal/grid"
	"github.com/henri123lemoine/periodic/internal/surface"
)

func main() {
	os.Exit(run(os.Stderr, launch))
}

// launcher runs the UI on the named backend until the user quits.
type launcher func(backend string, session *app.Session) error

func launch(backend string, session *app.Session) error {
	if backend == config.BackendTcell {
		return runTerminal(session)
	}
	return runBubbleTea(session)
}

func run(stderr io.Writer, start launcher) int {
	if _, err := debug.EnableFromEnv(); err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	defer debug.Close()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	for _, w := range cfg.Validate() {
		fmt.Fprintf(stderr, "Warning: %s\n", w)
		debug.Log("config: %s", w)
	}

	done := debug.Timed("load element table")
	table, err := elements.Load()
	done()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading element table: %v\n", err)
		return 1
	}
	debug.Log("element table: %d elements", table.Len())

	g := grid.New(grid.PeriodicTable)
	cursor, _ := g.First()
	if cfg.UI.RememberCursor {
		if pos, ok := cache.Restore(cache.CursorPath(), g); ok {
			cursor = pos
		}
	}
	session := app.NewSession(cfg, g, table, cursor)

	debug.Log("backend %s", cfg.UI.Backend)
	err = start(cfg.UI.Backend, session)

	var tooSmall *app.TooSmallError
	if errors.As(err, &tooSmall) {
		fmt.Fprintln(stderr, tooSmall.Error())
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if cfg.UI.RememberCursor {
		if err := cache.SaveCursor(cache.CursorPath(), session.Cursor(), session.Symbol()); err != nil {
			debug.Log("save cursor: %v", err)
		}
	}
	return 0
}

func runBubbleTea(session *app.Session) error {
	p := tea.NewProgram(app.New(session), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(app.Model); ok {
		return m.Err()
	}
	return nil
}

func runTerminal(session *app.Session) error {
	term, err := surface.NewTerminal()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	return app.Run(session, term)
}
