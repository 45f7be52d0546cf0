package auth

import "fmt"

// Logger is the minimal logging surface auth components depend on.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultLogger returns the fallback printf logger components use when
// none is injected.
func DefaultLogger() Logger {
	return defLogger{}
}

type defLogger struct{}

func (d defLogger) Debug(msg string, args ...any) { d.print("DBG", msg, args...) }
func (d defLogger) Info(msg string, args ...any)  { d.print("INF", msg, args...) }
func (d defLogger) Warn(msg string, args ...any)  { d.print("WRN", msg, args...) }
func (d defLogger) Error(msg string, args ...any) { d.print("ERR", msg, args...) }

func (defLogger) print(level, msg string, args ...any) {
	fmt.Printf("[%s] AUTH %s %v\n", level, msg, args)
}
