// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Output formats accepted by [New].
const (
	FormatCLI  = "cli"
	FormatJSON = "json"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// New returns a [JSONLogger] writing to w for [FormatJSON] and a [CLILogger]
// writing to w otherwise. silent only applies to the JSON logger.
func New(format string, w io.Writer, silent bool) Logger {
	if format == FormatJSON {
		return NewJSONLogger(w, silent)
	}
	l := NewCLILogger()
	if w != nil {
		l.SetOutput(w)
	}
	return l
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line, carrying
// "level", "time" and "message" fields.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	log    zerolog.Logger
	silent bool
}

// NewJSONLogger creates a JSON logger writing to writer. A nil writer discards
// output. When silent is true nothing is written at all.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		log:    zerolog.New(writer).With().Timestamp().Logger(),
		silent: silent,
	}
}

// Printf formats and logs a message at info level.
//
// Printf is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.log.Info().Msg(fmt.Sprintf(format, v...))
}

// Println logs a message at info level, joining operands like fmt.Sprintln
// (and [CLILogger.Println]) without the trailing newline.
//
// Println is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.log.Info().Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		w = io.Discard
	}
	j.log = j.log.Output(w)
}
