// Copyright © 2017 Microsoft <wastore@microsoft.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package sclog carries the leveled-logger interface used by scsim and
// cmd/scctl, trimmed down to the handful of levels they need. Package
// refill never imports this: the algorithmic core stays free of I/O, and
// logging lives only at the simulation/CLI layer that drives it.
package sclog

import (
	"fmt"
	"log"
	"os"
)

// LogLevel orders severity from most (LogError) to least (LogDebug).
type LogLevel uint8

const (
	LogNone LogLevel = iota
	LogError
	LogWarning
	LogInfo
	LogDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "ERROR"
	case LogWarning:
		return "WARN"
	case LogInfo:
		return "INFO"
	case LogDebug:
		return "DEBUG"
	default:
		return "NONE"
	}
}

// Logger is the interface scsim and cmd/scctl log through.
type Logger interface {
	ShouldLog(level LogLevel) bool
	Log(level LogLevel, msg string)
}

// stdLogger is a Logger backed by the standard library's log package.
type stdLogger struct {
	minimum LogLevel
	std     *log.Logger
}

// New returns a Logger that writes to stderr, filtering anything less
// severe than minimum.
func New(minimum LogLevel) Logger {
	return &stdLogger{minimum: minimum, std: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l *stdLogger) ShouldLog(level LogLevel) bool {
	return level != LogNone && level <= l.minimum
}

func (l *stdLogger) Log(level LogLevel, msg string) {
	if !l.ShouldLog(level) {
		return
	}
	l.std.Printf("%-5s %s", level, msg)
}

// Logf is a convenience wrapper around Log for formatted messages.
func Logf(l Logger, level LogLevel, format string, args ...any) {
	if !l.ShouldLog(level) {
		return
	}
	l.Log(level, fmt.Sprintf(format, args...))
}
