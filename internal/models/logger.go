package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a query is logged as slow.
const slowQueryThreshold = 200 * time.Millisecond

// dbLogger adapts zerolog to the gorm logger interface.
type dbLogger struct {
	Logger zerolog.Logger
}

func (l *dbLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l *dbLogger) Info(_ context.Context, s string, args ...interface{}) {
	l.Logger.Info().Msgf(s, args...)
}

func (l *dbLogger) Warn(_ context.Context, s string, args ...interface{}) {
	l.Logger.Warn().Msgf(s, args...)
}

func (l *dbLogger) Error(_ context.Context, s string, args ...interface{}) {
	l.Logger.Error().Msgf(s, args...)
}

func (l *dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	event := l.Logger.Debug()
	message := "database query"

	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound):
		event = l.Logger.Error().Err(err)
		message = "database query failed"
	case elapsed > slowQueryThreshold:
		event = l.Logger.Warn()
		message = "slow database query"
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", elapsed).
		Msg(message)
}
