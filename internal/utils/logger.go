package utils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a new configured logger
func NewLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Parse log level
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	return logger
}

// AccessLogHook mirrors error-and-above log entries into the access log,
// including stack detail when the entry carries it. The client never sees
// the stack; it only lands in the file.
type AccessLogHook struct {
	sink *AccessLog
}

// NewAccessLogHook creates a hook writing to the given sink
func NewAccessLogHook(sink *AccessLog) *AccessLogHook {
	return &AccessLogHook{sink: sink}
}

// Levels returns the levels the hook fires on
func (h *AccessLogHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel}
}

// Fire appends the entry to the access log
func (h *AccessLogHook) Fire(entry *logrus.Entry) error {
	line := fmt.Sprintf("ERROR %s", entry.Message)
	if err, ok := entry.Data[logrus.ErrorKey]; ok {
		line += fmt.Sprintf(": %v", err)
	}
	if stack, ok := entry.Data["stack"]; ok {
		line += fmt.Sprintf("\n%v", stack)
	}
	h.sink.Append(line)
	return nil
}
