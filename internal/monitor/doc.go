// Package monitor implements the dashboard's refresh and pagination loop.
//
// One Dashboard.Step call is one tick: the polled key is applied to the
// viewport and the refresh scheduler, and if a full render is due every
// visible chip column and the command bar are redrawn.
//
//	config.go     — tick length, column width, cadence bounds
//	keys.go       — the key vocabulary the loop understands
//	poller.go     — one key per tick from a bounded queue
//	scheduler.go  — cadence state and the render-due decision
//	viewport.go   — scroll offset and visible column count
//	surface.go    — the drawing surface the loop renders into
//	renderer.go   — one chip into one column region
//	commandbar.go — help text, cadence, visible range
//	dashboard.go  — the loop state tying it all together
package monitor
