package contract

import (
	"os"

	"github.com/rs/zerolog"
)

var logger = newLogger(zerolog.WarnLevel)

func newLogger(level zerolog.Level) zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// InitLogger rebuilds the process logger at the given level.
// Logs always go to stderr so stdout stays clean for results and MCP traffic.
func InitLogger(level zerolog.Level) {
	logger = newLogger(level)
}

// Logger returns the process logger for structured fields.
func Logger() *zerolog.Logger {
	return &logger
}

// LogDebug logs a debug message.
func LogDebug(msg string) {
	logger.Debug().Msg(msg)
}

// LogInfo logs an informational message.
func LogInfo(msg string) {
	logger.Info().Msg(msg)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	logger.Warn().Err(err).Msg(msg)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	logger.Fatal().Err(err).Msg(msg)
}
