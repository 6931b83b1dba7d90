package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/point-ledger/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormLogger forwards GORM's logs to the core logger
type GormLogger struct {
	coreLogger    coreport.Logger
	logLevel      logger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger creates a GORM logger. The GORM level follows the core logger's level.
func NewGormLogger(coreLogger coreport.Logger, slowThreshold time.Duration) logger.Interface {
	level := logger.Warn
	switch coreLogger.GetLevel() {
	case coreport.LogLevelDebug:
		level = logger.Info
	case coreport.LogLevelError:
		level = logger.Error
	}

	return &GormLogger{
		coreLogger:    coreLogger,
		logLevel:      level,
		slowThreshold: slowThreshold,
	}
}

// LogMode sets the log level for the logger
func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	newLogger := *l
	newLogger.logLevel = level
	return &newLogger
}

// Info logs info messages
func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Info {
		l.coreLogger.Info(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Warn logs warn messages
func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Warn {
		l.coreLogger.Warn(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Error logs error messages
func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.logLevel >= logger.Error {
		l.coreLogger.Error(fmt.Sprintf(msg, data...), map[string]any{"source": "database"})
	}
}

// Trace logs one SQL statement
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.logLevel <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := map[string]any{
		"elapsed_ms": elapsed.Milliseconds(),
		"rows":       rows,
		"sql":        sql,
		"source":     "database",
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.logLevel >= logger.Error:
		fields["error"] = err.Error()
		l.coreLogger.Error("SQL Error", fields)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.logLevel >= logger.Warn:
		l.coreLogger.Warn("Slow SQL Query", fields)
	case l.logLevel >= logger.Info:
		l.coreLogger.Debug("SQL Query", fields)
	}
}
