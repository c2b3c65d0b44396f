// Package ui provides rendering functions for the periodic terminal UI.
//
// DrawCell draws one bordered table cell, DrawPanel draws the info panel and
// Render composes a whole frame from RenderParams. All drawing goes through a
// surface.Drawer, so the same code paints the bubbletea canvas and the tcell
// screen. Rendering holds no state between frames.
package ui
