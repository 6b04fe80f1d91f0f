// Package logger contains a leveled logger.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gookit/color"
	"golang.org/x/term"
)

// Level is a log level.
type Level int

// Log levels.
const (
	Debug Level = iota + 1
	Info
	Warn
	Error
)

// ParseLevel parses a level by name.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug":
		return Debug, nil

	case "info", "":
		return Info, nil

	case "warn":
		return Warn, nil

	case "error":
		return Error, nil
	}

	return 0, fmt.Errorf("invalid log level: '%s'", s)
}

// Writer is implemented by everything that can receive log entries.
type Writer interface {
	Log(Level, string, ...any)
}

// Logger writes log entries to a stream.
type Logger struct {
	level    Level
	out      io.Writer
	useColor bool
	timeNow  func() time.Time

	mutex sync.Mutex
	buf   bytes.Buffer
}

// New allocates a Logger that writes to the standard output.
// Colors are used only when the standard output is a terminal.
func New(level Level) *Logger {
	return &Logger{
		level:    level,
		out:      os.Stdout,
		useColor: term.IsTerminal(int(os.Stdout.Fd())),
		timeNow:  time.Now,
	}
}

// NewWriter allocates a Logger that writes plain entries to w.
func NewWriter(level Level, w io.Writer) *Logger {
	return &Logger{
		level:   level,
		out:     w,
		timeNow: time.Now,
	}
}

// https://golang.org/src/log/log.go#L78
func itoa(i int, wid int) []byte {
	var b [20]byte
	bp := len(b) - 1
	for i >= 10 || wid > 1 {
		wid--
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		bp--
		i = q
	}
	b[bp] = byte('0' + i)
	return b[bp:]
}

func writeTime(buf *bytes.Buffer, t time.Time, useColor bool) {
	var intbuf bytes.Buffer

	// date
	year, month, day := t.Date()
	intbuf.Write(itoa(year, 4))
	intbuf.WriteByte('/')
	intbuf.Write(itoa(int(month), 2))
	intbuf.WriteByte('/')
	intbuf.Write(itoa(day, 2))
	intbuf.WriteByte(' ')

	// time
	hour, minute, sec := t.Clock()
	intbuf.Write(itoa(hour, 2))
	intbuf.WriteByte(':')
	intbuf.Write(itoa(minute, 2))
	intbuf.WriteByte(':')
	intbuf.Write(itoa(sec, 2))
	intbuf.WriteByte(' ')

	if useColor {
		buf.WriteString(color.RenderString(color.Gray.Code(), intbuf.String()))
	} else {
		buf.WriteString(intbuf.String())
	}
}

func writeLevel(buf *bytes.Buffer, level Level, useColor bool) {
	switch level {
	case Debug:
		if useColor {
			buf.WriteString(color.RenderString(color.Debug.Code(), "DEB"))
		} else {
			buf.WriteString("DEB")
		}

	case Info:
		if useColor {
			buf.WriteString(color.RenderString(color.Green.Code(), "INF"))
		} else {
			buf.WriteString("INF")
		}

	case Warn:
		if useColor {
			buf.WriteString(color.RenderString(color.Warn.Code(), "WAR"))
		} else {
			buf.WriteString("WAR")
		}

	case Error:
		if useColor {
			buf.WriteString(color.RenderString(color.Error.Code(), "ERR"))
		} else {
			buf.WriteString("ERR")
		}
	}
	buf.WriteByte(' ')
}

// Log writes a log entry.
func (l *Logger) Log(level Level, format string, args ...any) {
	if level < l.level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.buf.Reset()
	writeTime(&l.buf, l.timeNow(), l.useColor)
	writeLevel(&l.buf, level, l.useColor)
	fmt.Fprintf(&l.buf, format, args...)
	l.buf.WriteByte('\n')
	l.out.Write(l.buf.Bytes()) //nolint:errcheck
}

// Discard is a Writer that drops every entry.
type Discard struct{}

// Log implements Writer.
func (Discard) Log(Level, string, ...any) {}
