package logger

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Formats accepted by NewWithWriter.
const (
	FormatText  = "text"
	FormatPlain = "plain"
)

// New creates a Logger writing to stdout.
func New(level string) Logger {
	return NewWithWriter(level, FormatText, os.Stdout)
}

// NewWithWriter creates a Logger writing to w. Level tags are colored only
// for the text format on a terminal.
func NewWithWriter(level, format string, w io.Writer) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  strings.ToLower(level),
		color:  strings.ToLower(format) != FormatPlain && isTerminal(w),
	}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return NewWithWriter("error", FormatPlain, io.Discard)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
