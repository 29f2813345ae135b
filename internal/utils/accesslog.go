package utils

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// AccessLog is an append-only request log backed by a file. Appends are
// fire-and-forget: callers hand a line to a buffered channel and a single
// writer goroutine owns the file handle, so the request path never waits
// on disk. Write failures are logged and the request is unaffected.
type AccessLog struct {
	file   *os.File
	lines  chan string
	done   chan struct{}
	logger *logrus.Logger
}

// OpenAccessLog opens (creating if needed) the log file for appending and
// starts the writer goroutine
func OpenAccessLog(path string, logger *logrus.Logger) (*AccessLog, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	a := &AccessLog{
		file:   file,
		lines:  make(chan string, 256),
		done:   make(chan struct{}),
		logger: logger,
	}

	go a.writeLoop()

	return a, nil
}

func (a *AccessLog) writeLoop() {
	defer close(a.done)
	for line := range a.lines {
		if _, err := a.file.WriteString(line + "\n"); err != nil {
			a.logger.WithError(err).Warn("Failed to write access log entry")
		}
	}
}

// Append queues a raw line for writing. It never blocks; when the buffer
// is full the line is dropped. Safe to call on a nil AccessLog.
func (a *AccessLog) Append(line string) {
	if a == nil {
		return
	}
	select {
	case a.lines <- line:
	default:
		a.logger.Warn("Access log buffer full, dropping entry")
	}
}

// Record appends a timestamped request line
func (a *AccessLog) Record(method, path string) {
	a.Append(time.Now().Format(time.RFC3339) + " " + method + " " + path)
}

// Close drains queued lines and closes the file
func (a *AccessLog) Close() error {
	if a == nil {
		return nil
	}
	close(a.lines)
	<-a.done
	return a.file.Close()
}
