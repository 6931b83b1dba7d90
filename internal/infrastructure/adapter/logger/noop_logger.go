package logger

import (
	"sync/atomic"

	"github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
)

var _ core.Logger = (*NoopLogger)(nil)

// NoopLogger discards every entry. Its level is still tracked, so code that
// checks GetLevel before building fields, like the GORM adapter, takes the
// same branches it would with zap. Safe for concurrent use.
type NoopLogger struct {
	level atomic.Int32
}

// NewNoopLogger returns a NoopLogger at info level
func NewNoopLogger() core.Logger {
	l := &NoopLogger{}
	l.level.Store(int32(core.LogLevelInfo))
	return l
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level.Store(int32(level)) }
func (l *NoopLogger) GetLevel() core.LogLevel      { return core.LogLevel(l.level.Load()) }

func (*NoopLogger) Debug(string, map[string]any) {}
func (*NoopLogger) Info(string, map[string]any)  {}
func (*NoopLogger) Warn(string, map[string]any)  {}
func (*NoopLogger) Error(string, map[string]any) {}
func (*NoopLogger) Flush() error                 { return nil }
