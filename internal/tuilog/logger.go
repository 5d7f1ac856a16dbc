// Package tuilog provides file-based logging for the TUI, where stdout
// and stderr belong to the terminal renderer.
package tuilog

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// Logger writes timestamped key-value lines to a file. The zero value is
// a disabled logger whose methods are no-ops.
type Logger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
}

// Log is the global logger instance.
var Log = &Logger{}

// Init points the global logger at path. An empty path leaves logging
// disabled.
func Init(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	Log.mu.Lock()
	Log.file = f
	Log.enabled = true
	Log.mu.Unlock()
	Log.Info("logger initialized", "path", path)
	return nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.enabled = false
	return err
}

func (l *Logger) log(level, msg string, keyvals ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || l.file == nil {
		return
	}
	line := fmt.Sprintf("%s [%s] %s", time.Now().Format("15:04:05.000"), level, msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		line += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	fmt.Fprintln(l.file, line)
}

// Debug logs at debug level with optional key-value pairs.
func (l *Logger) Debug(msg string, keyvals ...any) { l.log("DEBUG", msg, keyvals...) }

// Info logs at info level with optional key-value pairs.
func (l *Logger) Info(msg string, keyvals ...any) { l.log("INFO", msg, keyvals...) }

// Warn logs at warn level with optional key-value pairs.
func (l *Logger) Warn(msg string, keyvals ...any) { l.log("WARN", msg, keyvals...) }

// Error logs at error level with optional key-value pairs.
func (l *Logger) Error(msg string, keyvals ...any) { l.log("ERROR", msg, keyvals...) }
