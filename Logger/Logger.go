package Logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

/* Field attached to every message written by the default logger. */
const defaultLoggerComponent = "gostore"

/*
A generic Logger that can be hooked into by the end user if required.

Example usage: Logger.New(log.Println, log.Println)
*/
type Logger struct {
	/* Logging debug messages with this - can be user provided. */
	debugLog func(...interface{})
	/* Logging error messages with this - can be user provided. */
	errorLog func(...interface{})
}

/* Create a new Logger with user-provided logging functions. Either may be nil to drop those messages. */
func New(debugLog func(...interface{}), errorLog func(...interface{})) *Logger {
	return &Logger{debugLog: debugLog, errorLog: errorLog}
}

/* Create a new Logger writing through the given logrus logger or entry. */
func NewLogrusLogger(l logrus.FieldLogger) *Logger {
	return &Logger{debugLog: l.Debug, errorLog: l.Error}
}

/* Create a new Logger which defaults logging to stderr, at the given logrus level. */
func NewStdLogger(level logrus.Level) *Logger {
	return NewLogrusLogger(getDefaultLogger(level))
}

/* Write a debug log. */
func (l *Logger) Debug(msg string) {
	if l == nil || l.debugLog == nil {
		return
	}

	l.debugLog(msg)
}

/* Write an error log. */
func (l *Logger) Error(msg string) {
	if l == nil || l.errorLog == nil {
		return
	}

	l.errorLog(msg)
}

func getDefaultLogger(level logrus.Level) *logrus.Entry {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	return base.WithField("component", defaultLoggerComponent)
}
