package guestservice

// Logger интерфейс логирования, реализуется pkg/logger
type Logger interface {
	Debug(format string, v ...any)
	Info(format string, v ...any)
	Warn(format string, v ...any)
	Error(format string, v ...any)
}
