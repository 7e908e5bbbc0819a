package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger is the operational diagnostic stream. Lines are pushed through a
// buffered channel to a single writer goroutine so handlers never block on
// file I/O.
type Logger struct {
	level Level
	out   io.Writer
	file  *os.File
	lines chan string
	wg    sync.WaitGroup
}

// New opens path for appending and starts the writer goroutine. An empty
// path logs to stderr.
func New(level Level, path string) (*Logger, error) {
	l := &Logger{
		level: level,
		out:   os.Stderr,
		lines: make(chan string, 4096),
	}

	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		l.out = file
		l.file = file
	}

	l.wg.Add(1)
	go l.worker()

	return l, nil
}

func (l *Logger) worker() {
	defer l.wg.Done()
	for line := range l.lines {
		io.WriteString(l.out, line)
	}
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	line := fmt.Sprintf("%s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05.000"),
		level.String(),
		fmt.Sprintf(format, args...))

	select {
	case l.lines <- line:
	default:
		// Drop when the buffer is full rather than blocking a handler.
	}
}

func (l *Logger) Debug(format string, args ...interface{}) { l.log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.log(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.log(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.log(LevelError, format, args...) }

func (l *Logger) Close() error {
	close(l.lines)
	l.wg.Wait()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (lv Level) String() string {
	switch lv {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

var global *Logger

// Init installs the process-wide logger used by the package-level helpers.
func Init(level Level, path string) error {
	logger, err := New(level, path)
	if err != nil {
		return err
	}
	global = logger
	return nil
}

func Debug(format string, args ...interface{}) {
	if global != nil {
		global.Debug(format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if global != nil {
		global.Info(format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if global != nil {
		global.Warn(format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if global != nil {
		global.Error(format, args...)
	}
}

func Close() error {
	if global != nil {
		return global.Close()
	}
	return nil
}
