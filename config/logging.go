package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const logFileName = "review-requester.log"

// LogWriter receives the standard logger, gin's access log and gorm. It stays
// stdout until InitLogging succeeds.
var LogWriter io.Writer = os.Stdout

var logDir = "logs"

// LogFilePath is the file InitLogging appends to and /logs tails.
func LogFilePath() string {
	return filepath.Join(logDir, logFileName)
}

// InitLogging tees all output into dir/review-requester.log. On error nothing
// changes and output remains on stdout only.
func InitLogging(dir string) (*os.File, error) {
	if dir == "" {
		dir = logDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	logDir = dir
	LogWriter = io.MultiWriter(os.Stdout, f)
	log.SetOutput(LogWriter)
	return f, nil
}
