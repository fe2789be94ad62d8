package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
)

// Level tags are padded to five columns before colouring so the escape
// codes do not upset alignment.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// Logger provides leveled logging throughout the application.
type Logger struct {
	info  *log.Logger
	warn  *log.Logger
	err   *log.Logger
	debug *log.Logger
}

// NewLogger creates a new Logger writing to stdout/stderr.
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout, os.Stderr)
}

// NewLoggerTo creates a Logger that writes errors to errOut and
// everything else to out.
func NewLoggerTo(out, errOut io.Writer) *Logger {
	flags := 0
	return &Logger{
		info:  log.New(out, "", flags),
		warn:  log.New(out, "", flags),
		err:   log.New(errOut, "", flags),
		debug: log.New(out, "", flags),
	}
}

func (l *Logger) timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05")
}

func (l *Logger) line(c *color.Color, tag, format string, args ...any) string {
	return fmt.Sprintf("[%s] %s %s", l.timestamp(), c.Sprintf("%-5s", tag), fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.info.Println(l.line(infoColor, "INFO", format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.warn.Println(l.line(warnColor, "WARN", format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.err.Println(l.line(errorColor, "ERROR", format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	l.debug.Println(l.line(debugColor, "DEBUG", format, args...))
}
