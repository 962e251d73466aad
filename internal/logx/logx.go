// Package logx holds the logging hook shared by the orkit solvers.
//
// Solvers never log by default. A caller that wants a trace of pivots or
// augmentation rounds passes any value with a Print method, typically a
// *log.Logger from the standard library.
package logx

// Logger receives one line per solver step.
type Logger interface {
	Print(v ...any)
}

// Nop discards everything.
type Nop struct{}

// Print implements Logger.
func (Nop) Print(...any) {}

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop{}
	}

	return l
}
