package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goto/salt/log"
	"github.com/sirupsen/logrus"

	"github.com/goto/gitsim/config"
)

// clientLogger prints plain lines meant for people, args are printf style
type clientLogger struct {
	writer io.Writer
	level  logrus.Level
}

// NewClientLogger is the logger for command output
func NewClientLogger() log.Logger {
	return NewClientLoggerWithWriter(os.Stdout, config.DefaultLogLevel)
}

func NewClientLoggerWithWriter(writer io.Writer, level string) log.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	return &clientLogger{
		writer: writer,
		level:  lvl,
	}
}

// NewDiagnosticLogger is the logger commands report their internals to,
// it writes to stderr so it never mixes with command output.
func NewDiagnosticLogger(conf config.LogConfig) log.Logger {
	if conf.Format == config.LogFormatJSON {
		return log.NewLogrus(
			log.LogrusWithLevel(conf.Level),
			log.LogrusWithWriter(os.Stderr),
			log.LogrusWithFormatter(&logrus.JSONFormatter{}),
		)
	}
	return NewClientLoggerWithWriter(os.Stderr, conf.Level)
}

func (l *clientLogger) Debug(msg string, args ...interface{}) {
	if l.level >= logrus.DebugLevel {
		l.print(msg, args...)
	}
}

func (l *clientLogger) Info(msg string, args ...interface{}) {
	if l.level >= logrus.InfoLevel {
		l.print(msg, args...)
	}
}

func (l *clientLogger) Warn(msg string, args ...interface{}) {
	if l.level >= logrus.WarnLevel {
		l.print(color.YellowString(format(msg, args...)))
	}
}

func (l *clientLogger) Error(msg string, args ...interface{}) {
	if l.level >= logrus.ErrorLevel {
		l.print(color.RedString(format(msg, args...)))
	}
}

func (l *clientLogger) Fatal(msg string, args ...interface{}) {
	l.print(color.RedString(format(msg, args...)))
	os.Exit(1)
}

func (l *clientLogger) Level() string {
	return l.level.String()
}

func (l *clientLogger) Writer() io.Writer {
	return l.writer
}

func (l *clientLogger) print(msg string, args ...interface{}) {
	fmt.Fprintln(l.writer, format(msg, args...))
}

// format leaves messages without args alone, they may carry a literal %
func format(msg string, args ...interface{}) string {
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
