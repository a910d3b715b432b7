package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger writes session events to a rotating log file. Nothing it logs
// reaches the console.
type Logger struct {
	logger    *log.Logger
	closer    io.Closer
	jsonMode  bool
	sessionID string
}

// LogOptions controls where and how a Logger writes.
type LogOptions struct {
	Path      string // empty discards everything
	JSON      bool
	SessionID string // generated when empty
}

// NewLogger opens a logger backed by a lumberjack rotating file.
func NewLogger(opts LogOptions) (*Logger, error) {
	sid := opts.SessionID
	if sid == "" {
		sid = uuid.NewString()
	}
	if opts.Path == "" {
		return &Logger{logger: log.New(io.Discard, "", 0), sessionID: sid}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	flags := log.LstdFlags
	if opts.JSON {
		flags = 0
	}
	return &Logger{
		logger:    log.New(logFile, "", flags),
		closer:    logFile,
		jsonMode:  opts.JSON,
		sessionID: sid,
	}, nil
}

// NewDiscardLogger returns a logger that drops every message.
func NewDiscardLogger() *Logger {
	l, _ := NewLogger(LogOptions{})
	return l
}

// SessionID identifies the process run in every log line.
func (w *Logger) SessionID() string {
	return w.sessionID
}

// Close closes the logger resources.
func (w *Logger) Close() error {
	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}

// Log logs a general message.
func (w *Logger) Log(message string) {
	w.write("info", message)
}

// Logf logs a formatted general message.
func (w *Logger) Logf(format string, v ...any) {
	w.write("info", fmt.Sprintf(format, v...))
}

// LogError logs err at error level.
func (w *Logger) LogError(err error) {
	w.write("error", err.Error())
}

func (w *Logger) write(level, message string) {
	if w.jsonMode {
		_ = json.NewEncoder(w.logger.Writer()).Encode(map[string]any{"level": level, "msg": message, "sid": w.sessionID})
		return
	}
	if level == "error" {
		w.logger.Printf("[%s] Error: %s", w.sessionID, message)
		return
	}
	w.logger.Printf("[%s] %s", w.sessionID, message)
}
