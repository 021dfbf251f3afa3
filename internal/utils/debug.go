package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	debugFile   *os.File
	debugOnce   sync.Once
	logsDir     string
	verboseOut  io.Writer
	debugLogger zerolog.Logger = zerolog.Nop()
	mu          sync.RWMutex
)

const logPrefix = "debug-"

// ConfigureDebug sets the directory for debug logs
func ConfigureDebug(dir string) {
	mu.Lock()
	defer mu.Unlock()
	resetLocked()
	logsDir = dir
}

// SetVerbose mirrors debug messages to w (usually stderr). nil disables it.
func SetVerbose(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	resetLocked()
	verboseOut = w
}

// resetLocked closes the current log file so the next Debug call reopens
// the logger with the current settings. Callers hold mu.
func resetLocked() {
	if debugFile != nil {
		_ = debugFile.Close()
		debugFile = nil
	}
	debugLogger = zerolog.Nop()
	debugOnce = sync.Once{}
}

func initLogger() {
	var writers []io.Writer

	if logsDir != "" {
		if err := os.MkdirAll(logsDir, 0o755); err == nil {
			name := fmt.Sprintf("%s%s.log", logPrefix, time.Now().Format("20060102-150405"))
			if f, err := os.Create(filepath.Join(logsDir, name)); err == nil {
				debugFile = f
				writers = append(writers, zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: "2006-01-02 15:04:05"})
			}
		}
	}
	if verboseOut != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: verboseOut, TimeFormat: time.Kitchen})
	}

	if len(writers) == 0 {
		debugLogger = zerolog.Nop()
		return
	}
	debugLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

// Debug writes a message to the debug log in the configured directory
func Debug(format string, args ...any) {
	mu.RLock()
	dir, verbose := logsDir, verboseOut
	mu.RUnlock()

	// Nothing configured, nothing to do
	if dir == "" && verbose == nil {
		return
	}

	mu.Lock()
	debugOnce.Do(initLogger)
	logger := debugLogger
	mu.Unlock()

	logger.Debug().Msgf(format, args...)
}

// CloseDebug flushes and closes the debug log file.
func CloseDebug() {
	mu.Lock()
	defer mu.Unlock()
	resetLocked()
}

// CleanupLogs keeps the newest `keep` debug logs and removes the rest.
func CleanupLogs(keep int) {
	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	if dir == "" || keep < 0 {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), logPrefix) || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		logs = append(logs, e.Name())
	}
	if len(logs) <= keep {
		return
	}

	// Timestamped names sort chronologically
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			Debug("Failed to remove old log %s: %v", name, err)
		}
	}
}
