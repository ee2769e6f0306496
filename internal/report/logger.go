package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level represents a logger verbosity threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// LoggerConfig configures a diagnostic Logger.
type LoggerConfig struct {
	Level  Level
	Output io.Writer
}

// DefaultLoggerConfig returns Info-level logging to stderr, matching the
// driver's default diagnostic stream (spec.md §6 keeps it separate from
// the event stream).
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LevelInfo, Output: os.Stderr}
}

// Logger is a small level-gated wrapper around the standard logger,
// used for the optional progress stream (spec.md §6: "every 10,000
// cycles") and for warnings about undefined trace input (SPEC_FULL.md §9).
type Logger struct {
	logger *log.Logger
	level  Level
	mu     sync.Mutex
}

// NewLogger creates a Logger from cfg (nil uses DefaultLoggerConfig).
func NewLogger(cfg *LoggerConfig) *Logger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		logger: log.New(output, "", log.LstdFlags),
		level:  cfg.Level,
	}
}

func (l *Logger) log(level Level, prefix, format string, args ...any) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Printf("%s %s", prefix, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, "[DEBUG]", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log(LevelInfo, "[INFO]", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log(LevelWarn, "[WARN]", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, "[ERROR]", format, args...) }

// ProgressReporter gates progress lines to every `interval` cycles. A
// zero interval disables progress reporting entirely.
type ProgressReporter struct {
	logger   *Logger
	interval int64
}

// NewProgressReporter builds a ProgressReporter over logger, firing
// every interval cycles (0 disables it).
func NewProgressReporter(logger *Logger, interval int64) *ProgressReporter {
	return &ProgressReporter{logger: logger, interval: interval}
}

// Tick reports progress if cycle is a multiple of the configured interval.
func (p *ProgressReporter) Tick(cycle int64, dispatchQueueSize, rsSize int) {
	if p.interval <= 0 || cycle%p.interval != 0 {
		return
	}
	p.logger.Infof("cycle=%d dispatch_queue=%d reservation_station=%d", cycle, dispatchQueueSize, rsSize)
}
