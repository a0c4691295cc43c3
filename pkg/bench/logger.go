package bench

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"recordtable/pkg/config"
)

// NewLogger builds the harness logger. Development mode switches to the
// console encoder.
func NewLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
