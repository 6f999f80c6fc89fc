// Package tui runs the sensor dashboard inside a BubbleTea program.
//
// Component architecture:
//
//	model.go   — root model, tick loop, key and resize routing
//	canvas.go  — cell grid implementing monitor.Surface
//	keymap.go  — key bindings and translation to monitor keys
//	theme.go   — centralized color + style definitions
//	helpers.go — clipping helpers shared by the canvas
package tui
