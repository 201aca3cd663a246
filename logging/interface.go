package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"
)

// LevelTrace sits below slog.LevelDebug for spammy per-tile diagnostics.
const LevelTrace = slog.Level(-8)

type stdLogInterceptor interface {
	Printf(format string, v ...interface{})
}

type Logger interface {
	Trace(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	stdLogInterceptor
}

// tileLogger is a Logger atop a slog text handler. Each named logger keeps
// its own minimum level; they all share whatever output the package is
// currently redirected to.
type tileLogger struct {
	slogger *slog.Logger
	level   *slog.LevelVar
}

var _ Logger = (*tileLogger)(nil)

func newTileLogger(lvl slog.Level, out io.Writer) *tileLogger {
	level := &slog.LevelVar{}
	level.Set(lvl)
	return &tileLogger{
		slogger: slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
			Level:     level,
			AddSource: true,
		})),
		level: level,
	}
}

// output emits a record attributed to the frame 'skip' levels above
// runtime.Callers; 3 attributes the caller of a helper that calls output
// directly.
func (log *tileLogger) output(skip int, lvl slog.Level, msg string, args ...interface{}) {
	if !log.slogger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	log.slogger.Handler().Handle(context.Background(), r)
}

func (log *tileLogger) Trace(msg string, args ...interface{}) {
	log.output(3, LevelTrace, msg, args...)
}

func (log *tileLogger) Debug(msg string, args ...interface{}) {
	log.output(3, slog.LevelDebug, msg, args...)
}

func (log *tileLogger) Info(msg string, args ...interface{}) {
	log.output(3, slog.LevelInfo, msg, args...)
}

func (log *tileLogger) Warn(msg string, args ...interface{}) {
	log.output(3, slog.LevelWarn, msg, args...)
}

func (log *tileLogger) Error(msg string, args ...interface{}) {
	log.output(3, slog.LevelError, msg, args...)
}

func (log *tileLogger) Printf(format string, v ...interface{}) {
	log.output(3, slog.LevelInfo, fmt.Sprintf(format, v...))
}

var debugLogger *tileLogger
var infoLogger *tileLogger
var warnLogger *tileLogger
var errorLogger *tileLogger

func init() {
	debugLogger = newTileLogger(slog.LevelDebug, os.Stderr)
	infoLogger = newTileLogger(slog.LevelInfo, os.Stderr)
	warnLogger = newTileLogger(slog.LevelWarn, os.Stderr)
	errorLogger = newTileLogger(slog.LevelError, os.Stderr)
}

func DefaultLogger() Logger {
	return InfoLogger()
}

func DebugLogger() Logger {
	return debugLogger
}

func InfoLogger() Logger {
	return infoLogger
}

func WarnLogger() Logger {
	return warnLogger
}

func ErrorLogger() Logger {
	return errorLogger
}

func Log(msg string, args ...interface{}) {
	infoLogger.output(3, slog.LevelInfo, msg, args...)
}

func Trace(msg string, args ...interface{}) {
	infoLogger.output(3, LevelTrace, msg, args...)
}

func Debug(msg string, args ...interface{}) {
	infoLogger.output(3, slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...interface{}) {
	infoLogger.output(3, slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...interface{}) {
	infoLogger.output(3, slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...interface{}) {
	infoLogger.output(3, slog.LevelError, msg, args...)
}

// Call this to redirect all logging output to the given io.Writer. A cleanup
// function that undoes the redirect is returned.
func Redirect(newOut io.Writer) func() {
	oldDebugLogger := debugLogger
	debugLogger = newTileLogger(slog.LevelDebug, newOut)

	oldInfoLogger := infoLogger
	infoLogger = newTileLogger(slog.LevelInfo, newOut)
	infoLogger.level.Set(oldInfoLogger.level.Level())

	oldWarnLogger := warnLogger
	warnLogger = newTileLogger(slog.LevelWarn, newOut)

	oldErrorLogger := errorLogger
	errorLogger = newTileLogger(slog.LevelError, newOut)

	return func() {
		debugLogger = oldDebugLogger
		infoLogger = oldInfoLogger
		warnLogger = oldWarnLogger
		errorLogger = oldErrorLogger
	}
}

// Like Redirect but also tees a copy of the output into the returned buffer
// so callers can inspect what got logged.
func RedirectOutput(newOut io.Writer) *bytes.Buffer {
	buf := &bytes.Buffer{}
	Redirect(io.MultiWriter(buf, newOut))
	return buf
}

// Tells the 'Default Logger' to change its verbosity.
func SetLogLevel(lvl slog.Level) {
	infoLogger.level.Set(lvl)
}

// Like SetLogLevel but returns a cleanup function that restores the previous
// verbosity.
func SetLoggingLevel(lvl slog.Level) func() {
	old := infoLogger.level.Level()
	infoLogger.level.Set(lvl)
	return func() {
		infoLogger.level.Set(old)
	}
}
