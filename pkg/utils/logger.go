package utils

import (
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger     *logrus.Logger
	loggerOnce sync.Once
)

// GetLogger returns the shared application logger, creating it with JSON
// output on first use.
func GetLogger() *logrus.Logger {
	loggerOnce.Do(func() {
		logger = logrus.New()
		logger.SetOutput(os.Stdout)
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	})
	return logger
}

// InitLogger applies the configured level and format to the shared logger.
func InitLogger(level, format string) {
	l := GetLogger()

	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		l.SetLevel(parsed)
	}

	switch strings.ToLower(format) {
	case "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.SetFormatter(&logrus.JSONFormatter{})
	}
}

// LogWithRequestID creates a log entry tagged with a request ID for tracking
func LogWithRequestID(requestID string) *logrus.Entry {
	return GetLogger().WithField("request_id", requestID)
}
