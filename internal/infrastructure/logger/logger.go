package logger

import (
	"io"
	"os"
	"strings"

	usecasecontract "github.com/mikiasgoitom/VidTube/internal/usecase/contract"
	"github.com/sirupsen/logrus"
)

// AppLogger adapts a logrus entry to the use case logging interface.
type AppLogger struct {
	entry *logrus.Entry
}

// NewLogger builds a logrus logger. format is "json" or "text"; level is any
// logrus level name and falls back to info.
func NewLogger(level, format string) *AppLogger {
	return NewLoggerTo(os.Stdout, level, format)
}

// NewLoggerTo is NewLogger writing to out.
func NewLoggerTo(out io.Writer, level, format string) *AppLogger {
	l := logrus.New()
	l.SetOutput(out)
	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return &AppLogger{entry: logrus.NewEntry(l)}
}

var _ usecasecontract.IAppLogger = (*AppLogger)(nil)

// Entry exposes the underlying logrus entry for gin middleware.
func (l *AppLogger) Entry() *logrus.Entry {
	return l.entry
}

func (l *AppLogger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *AppLogger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *AppLogger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *AppLogger) Warningf(format string, args ...interface{}) {
	l.entry.Warningf(format, args...)
}

func (l *AppLogger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *AppLogger) Fatalf(format string, args ...interface{}) {
	l.entry.Fatalf(format, args...)
}

func (l *AppLogger) WithFields(fields map[string]interface{}) usecasecontract.IAppLogger {
	return &AppLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}
