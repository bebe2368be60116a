// Package tui is the terminal host of the graph engine.
//
// A bubbletea program owns one session at a time. Frame ticks step the
// simulation while it is warm, left-button mouse events are mapped from
// cells to viewport coordinates and become drag events, and the scene is
// rasterised onto a lipgloss-coloured rune canvas on every view.
//
// Fetching happens in a command off the update loop; the new session is
// swapped in by Update, so the engine is only ever touched from one
// goroutine.
package tui
