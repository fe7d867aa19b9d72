package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// GormLogger routes gorm's statements through the service logger.
type GormLogger struct {
	log           *logger.Logger
	level         gormLogger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(log *logger.Logger, slowThreshold time.Duration) *GormLogger {
	if slowThreshold <= 0 {
		slowThreshold = time.Second
	}
	return &GormLogger{log: log.With("component", "gorm"), level: gormLogger.Warn, slowThreshold: slowThreshold}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.level = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Info {
		l.log.Info(fmt.Sprintf(msg, args...), ctxutil.LogFields(ctx)...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, args...), ctxutil.LogFields(ctx)...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormLogger.Error {
		l.log.Error(fmt.Sprintf(msg, args...), ctxutil.LogFields(ctx)...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormLogger.Error &&
		!errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey):
		sql, rows := fc()
		kv := append([]interface{}{"error", err, "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql}, ctxutil.LogFields(ctx)...)
		l.log.Error("query failed", kv...)
	case elapsed > l.slowThreshold && l.level >= gormLogger.Warn:
		sql, rows := fc()
		kv := append([]interface{}{"elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql}, ctxutil.LogFields(ctx)...)
		l.log.Warn("slow query", kv...)
	case l.level >= gormLogger.Info:
		sql, rows := fc()
		l.log.Debug("query", "elapsed_ms", elapsed.Milliseconds(), "rows", rows, "sql", sql)
	}
}
