package interfaces

type Reporter interface {
	Printf(format string, args ...any)
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Diagnostic(v any)
}
