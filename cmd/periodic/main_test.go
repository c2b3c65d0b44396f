package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/henri123lemoine/periodic/internal/app"
	"github.com/henri123lemoine/periodic/internal/cache"
	"github.com/henri123lemoine/periodic/internal/debug"
	"github.com/henri123lemoine/periodic/internal/grid"
	"github.com/henri123lemoine/periodic/internal/surface"
)

// setupEnv points config and cache lookups at a temp dir and writes
// config.toml when contents is not empty.
func setupEnv(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv(debug.EnvVar, "")

	if contents == "" {
		return
	}
	path := filepath.Join(dir, "config", "periodic", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal(err)
	}
}

// simLauncher runs the tcell loop on a simulated screen of the given size,
// feeding it keys.
func simLauncher(t *testing.T, cols, rows int, keys ...rune) launcher {
	return func(_ string, session *app.Session) error {
		sim := tcell.NewSimulationScreen("UTF-8")
		term, err := surface.NewTerminalFrom(sim)
		if err != nil {
			t.Fatalf("NewTerminalFrom: %v", err)
		}
		sim.SetSize(cols, rows)
		for _, r := range keys {
			sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
		}
		return app.Run(session, term)
	}
}

func TestRunNormalQuit(t *testing.T) {
	setupEnv(t, "")
	var stderr bytes.Buffer

	if code := run(&stderr, simLauncher(t, 90, 30, 'l', 'q')); code != 0 {
		t.Errorf("run() = %d, want 0 (stderr %q)", code, stderr.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestRunTerminalTooSmall(t *testing.T) {
	setupEnv(t, "")
	var stderr bytes.Buffer

	if code := run(&stderr, simLauncher(t, 80, 24, 'q')); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if got, want := stderr.String(), "Terminal too small: 24x80, need 30x90 minimum.\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestRunBackendError(t *testing.T) {
	setupEnv(t, "")
	var stderr bytes.Buffer

	failing := func(string, *app.Session) error { return errors.New("no tty") }
	if code := run(&stderr, failing); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "Error: no tty") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunBadConfig(t *testing.T) {
	setupEnv(t, "[layout\ncell_width = ")
	var stderr bytes.Buffer

	called := false
	stub := func(string, *app.Session) error { called = true; return nil }
	if code := run(&stderr, stub); code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if called {
		t.Error("backend started despite a broken config")
	}
	if !strings.Contains(stderr.String(), "Error loading config") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunConfigWarningsAndBackend(t *testing.T) {
	setupEnv(t, "[layout]\ncell_width = -1\n\n[ui]\nbackend = \"tcell\"\n")
	var stderr bytes.Buffer

	var backend string
	stub := func(b string, _ *app.Session) error { backend = b; return nil }
	if code := run(&stderr, stub); code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	if backend != "tcell" {
		t.Errorf("backend = %q, want tcell", backend)
	}
	if !strings.Contains(stderr.String(), "Warning: Invalid value for layout.cell_width: -1") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunRemembersCursor(t *testing.T) {
	setupEnv(t, "[ui]\nremember_cursor = true\n")
	var stderr bytes.Buffer

	moveRight := func(_ string, s *app.Session) error {
		s.HandleKey(surface.Key("right"))
		return nil
	}
	if code := run(&stderr, moveRight); code != 0 {
		t.Fatalf("run() = %d, stderr %q", code, stderr.String())
	}

	c := cache.LoadCursor(cache.CursorPath())
	if c == nil || c.Symbol != "He" {
		t.Fatalf("saved cursor = %+v, want He", c)
	}

	var restored grid.Position
	record := func(_ string, s *app.Session) error {
		restored = s.Cursor()
		return nil
	}
	if code := run(&stderr, record); code != 0 {
		t.Fatalf("second run() = %d", code)
	}
	if restored != (grid.Position{Row: 0, Col: 17}) {
		t.Errorf("restored cursor = %v, want 0,17", restored)
	}
}
