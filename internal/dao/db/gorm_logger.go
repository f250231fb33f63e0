package db

import (
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// zapWriter 把 gorm 日志写到全局 zap logger
type zapWriter struct{}

func (zapWriter) Printf(format string, args ...interface{}) {
	zap.L().Sugar().Warnf(format, args...)
}

// newGormLogger 只记录慢查询和真正的错误，查不到记录由业务层自己处理
func newGormLogger() gormlogger.Interface {
	return gormlogger.New(zapWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
