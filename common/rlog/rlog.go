package rlog

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logLock sync.RWMutex
	level   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger  *zap.SugaredLogger
)

func init() {
	logger = newLogger()
}

func newLogger() *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = level
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

// SetLevel changes the minimum level, unknown names fall back to info
func SetLevel(name string) {
	var lv zapcore.Level
	if err := lv.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		lv = zapcore.InfoLevel
	}
	level.SetLevel(lv)
}

// SetLogger replaces the backing logger, used by tests to silence or capture output
func SetLogger(l *zap.Logger) {
	logLock.Lock()
	defer logLock.Unlock()
	logger = l.Sugar()
}

func current() *zap.SugaredLogger {
	logLock.RLock()
	defer logLock.RUnlock()
	return logger
}

// Println logs at info level
func Println(v ...interface{}) {
	current().Info(v...)
}

// Infow logs a message with key value pairs at info level
func Infow(msg string, keysAndValues ...interface{}) {
	current().Infow(msg, keysAndValues...)
}

// Debugw logs a message with key value pairs at debug level
func Debugw(msg string, keysAndValues ...interface{}) {
	current().Debugw(msg, keysAndValues...)
}

// Errorw logs a message with key value pairs at error level
func Errorw(msg string, keysAndValues ...interface{}) {
	current().Errorw(msg, keysAndValues...)
}

// Fatal is equivalent to Print() followed by a call to os.Exit(1).
func Fatal(v ...interface{}) {
	current().Fatal(v...)
}

// Sync flushes buffered entries
func Sync() error {
	return current().Sync()
}
