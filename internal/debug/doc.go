// Package debug provides opt-in debug logging for periodic.
//
// The terminal belongs to the UI while periodic runs, so messages go to a
// file named by the PERIODIC_DEBUG environment variable instead.
package debug
