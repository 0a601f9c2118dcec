// Package log is a small leveled logger for the command and storage
// layers. The core stays pure and never logs.
package log

import (
	"fmt"
	stdlog "log"
	"os"
	"sync"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var (
	logger     *stdlog.Logger
	loggerOnce sync.Once
	minLevel   = LevelWarn
)

func initLogger() {
	loggerOnce.Do(func() {
		logger = stdlog.New(os.Stderr, "", stdlog.LstdFlags)
	})
}

// SetLevel sets the minimum level that gets emitted. Defaults to WARN so
// normal command output stays clean.
func SetLevel(l Level) {
	initLogger()
	if _, ok := levelRank[l]; ok {
		minLevel = l
	}
}

func Debug(msg string, kv ...any) { emit(LevelDebug, msg, kv...) }
func Info(msg string, kv ...any)  { emit(LevelInfo, msg, kv...) }
func Warn(msg string, kv ...any)  { emit(LevelWarn, msg, kv...) }

// Error logs a message with its error, followed by optional key/value
// pairs.
func Error(msg string, err error, kv ...any) {
	if err != nil {
		kv = append([]any{"error", err}, kv...)
	}
	emit(LevelError, msg, kv...)
}

func emit(l Level, msg string, kv ...any) {
	initLogger()
	if levelRank[l] < levelRank[minLevel] {
		return
	}
	line := fmt.Sprintf("[%s] %s", l, msg)
	for i := 0; i+1 < len(kv); i += 2 {
		line += fmt.Sprintf(" %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 == 1 {
		line += fmt.Sprintf(" %v=?", kv[len(kv)-1])
	}
	logger.Print(line)
}
