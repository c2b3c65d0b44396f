package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable holding the debug log path.
const EnvVar = "PERIODIC_DEBUG"

var (
	mu  sync.Mutex
	out io.WriteCloser
)

// Enable starts writing debug messages to the file at path, truncating it.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	EnableWriter(f)
	return nil
}

// EnableFromEnv enables logging when EnvVar is set. It reports whether
// logging was turned on.
func EnableFromEnv() (bool, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return false, nil
	}
	if err := Enable(path); err != nil {
		return false, fmt.Errorf("%s=%s: %w", EnvVar, path, err)
	}
	return true, nil
}

// EnableWriter sends debug messages to w, closing any previous destination.
func EnableWriter(w io.WriteCloser) {
	mu.Lock()
	if out != nil {
		_ = out.Close()
	}
	out = w
	mu.Unlock()

	Log("debug logging enabled")
}

// Close stops logging and closes the destination.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if out != nil {
		_ = out.Close()
		out = nil
	}
}

// IsEnabled returns whether debug logging is enabled.
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Log writes a debug message if debugging is enabled.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	_, _ = fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}

// Timed logs the duration of an operation. Usage:
//
//	defer debug.Timed("load table")()
func Timed(name string) func() {
	if !IsEnabled() {
		return func() {}
	}

	start := time.Now()
	return func() {
		Log("%s took %v", name, time.Since(start))
	}
}
