package core

// LogLevel orders log severities; a logger drops entries below its level
type LogLevel int

// Severities, lowest first
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// Logger is the structured logging port used by services and adapters.
// Field keys are snake_case; an error value under any key is logged as an error field.
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel

	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)

	// Flush writes out buffered entries; call it before the process exits
	Flush() error
}
