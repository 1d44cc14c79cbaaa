// Package term adapts terminal libraries to the small drawing and input
// surface the game needs. Two interactive backends are provided, termbox and
// tcell, plus an in-memory text screen for scripted runs.
package term
