// Copyright (c) 2010-2012 Guillermo Castro
// released under the MIT license

package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents the level to log messages at.
type Level int

const (
	// LogDebug represents debug messages.
	LogDebug Level = iota
	// LogInfo represents informational messages.
	LogInfo
	// LogWarning represents warnings.
	LogWarning
	// LogError represents errors.
	LogError
)

var (
	// LogLevelNames takes a config name and gives the real log level.
	LogLevelNames = map[string]Level{
		"debug":   LogDebug,
		"info":    LogInfo,
		"warn":    LogWarning,
		"warning": LogWarning,
		"error":   LogError,
	}

	// LogLevelDisplayNames gives the display name to use for our log levels.
	LogLevelDisplayNames = map[Level]string{
		LogDebug:   "debug",
		LogInfo:    "info",
		LogWarning: "warn",
		LogError:   "error",
	}
)

// Manager is the main interface used to log debug/info/error messages.
type Manager struct {
	writeLock sync.Mutex
	output    io.Writer
	level     Level
}

// NewManager returns a new log manager writing to stderr at the given level.
func NewManager(level Level) *Manager {
	return &Manager{
		output: os.Stderr,
		level:  level,
	}
}

// Log logs the given message with the given details.
func (logger *Manager) Log(level Level, messageParts ...string) {
	if level < logger.level {
		return
	}

	var rawBuf bytes.Buffer
	fmt.Fprintf(&rawBuf, "%s : %-5s : ", time.Now().UTC().Format("2006-01-02T15:04:05.000Z"), LogLevelDisplayNames[level])
	for i, p := range messageParts {
		rawBuf.WriteString(p)

		if i != len(messageParts)-1 {
			rawBuf.WriteString(" : ")
		}
	}
	rawBuf.WriteRune('\n')

	logger.writeLock.Lock()
	logger.output.Write(rawBuf.Bytes())
	logger.writeLock.Unlock()
}

// Debug logs the given message as a debug message.
func (logger *Manager) Debug(messageParts ...string) {
	logger.Log(LogDebug, messageParts...)
}

// Info logs the given message as an info message.
func (logger *Manager) Info(messageParts ...string) {
	logger.Log(LogInfo, messageParts...)
}

// Warning logs the given message as a warning.
func (logger *Manager) Warning(messageParts ...string) {
	logger.Log(LogWarning, messageParts...)
}

// Error logs the given message as an error.
func (logger *Manager) Error(messageParts ...string) {
	logger.Log(LogError, messageParts...)
}
