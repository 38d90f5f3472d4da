// Package progress is the plain console presentation of the phase timer.
// It reads line commands, feeds clock ticks to the timer, and renders the
// countdown either as a spinner (interactive terminals) or as log-style
// lines (pipes and redirects).
package progress
