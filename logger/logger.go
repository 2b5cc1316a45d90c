// Package logger prints tagged, coloured log lines such as
// "[APP] [INFO] window created" on top of the standard log package.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"uk.ac.bris.cs/leepath/config"
)

// ErrNoWriter is returned by New when no output is given.
var ErrNoWriter = errors.New("logger: nil writer")

// Logger writes lines tagged with a component prefix.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New returns a logger for the component named prefix. color is one of the
// config colour constants and may be empty.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNoWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

func (l *Logger) Info(msg string) { l.print(config.LogInfoColor, "INFO", msg) }

func (l *Logger) Warning(msg string) { l.print(config.LogWarnColor, "WARNING", msg) }

func (l *Logger) Error(msg string) { l.print(config.LogErrorColor, "ERROR", msg) }

// Infof formats according to a format specifier and logs at INFO.
func (l *Logger) Infof(format string, args ...any) { l.Info(fmt.Sprintf(format, args...)) }

// Errorf formats according to a format specifier and logs at ERROR.
func (l *Logger) Errorf(format string, args ...any) { l.Error(fmt.Sprintf(format, args...)) }

func (l *Logger) print(levelColor, level, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.prefix, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.prefix, config.ColorReset,
		levelColor, level, config.LogColorReset,
		msg)
}
