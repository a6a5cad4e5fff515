package core

// Logger interface for scene-core logging
type Logger interface {
	Printf(format string, args ...interface{})
}
