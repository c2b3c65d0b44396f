// Package app runs the periodic table browser.
//
// Session holds the cursor, the input mode and the render inputs, and
// turns key presses into cursor moves. Two front ends drive it: Run is an
// explicit clear, draw, show and poll loop over a surface.Surface (used with
// tcell), and Model implements the Bubble Tea interface (Init, Update, View)
// by drawing each frame onto an in-memory canvas.
package app
