package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	log *logrus.Logger
}

func New(levelStr string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(parseLevel(levelStr))
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return &Logger{log: l}
}

func parseLevel(levelStr string) logrus.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *Logger) Debug(v ...interface{}) {
	l.log.Debug(v...)
}

func (l *Logger) Info(v ...interface{}) {
	l.log.Info(v...)
}

func (l *Logger) Warn(v ...interface{}) {
	l.log.Warn(v...)
}

func (l *Logger) Error(v ...interface{}) {
	l.log.Error(v...)
}

func (l *Logger) Fatal(v ...interface{}) {
	l.log.Fatal(v...)
}
