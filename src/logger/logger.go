// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/wallet-core/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and a switchable destination.
//
// Configuration assembly reports skipped certificate resources and unreadable
// preference stores through a Logger instead of failing.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled,
// keeping stdout free for command output.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stderr, "", 0)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line.
// Every entry carries "level", "component" and "message" keys.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu        sync.Mutex
	writer    io.Writer
	silent    bool
	component string
}

// NewJSONLogger creates a new structured logger for component.
// A nil writer discards output; silent suppresses output entirely.
func NewJSONLogger(writer io.Writer, component string, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer:    writer,
		silent:    silent,
		component: component,
	}
}

// Discard returns a silent logger. It is the default for library code.
func Discard() *JSONLogger { return NewJSONLogger(io.Discard, "", true) }

type entry struct {
	Level     string `json:"level"`
	Component string `json:"component,omitempty"`
	Message   string `json:"message"`
}

func (j *JSONLogger) write(msg string) {
	if j.silent {
		return
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encoder appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(entry{Level: "info", Component: j.component, Message: msg}); err != nil {
		return
	}

	j.mu.Lock()
	_, _ = j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}

// Printf formats and logs a structured message.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Printf(format string, v ...any) { j.write(fmt.Sprintf(format, v...)) }

// Println logs a structured message.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Println(v ...any) { j.write(fmt.Sprint(v...)) }

// SetOutput sets the output destination for the JSON logger.
// A nil writer discards output.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
