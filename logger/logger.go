// Package logger wraps a process-wide zap sugared logger.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Init builds the global logger. mode is "prod"/"production" for JSON output,
// anything else gets the development console encoder.
func Init(mode string) error {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zapLogger, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zapLogger.Sugar()
	return nil
}

func Sync() {
	_ = Log.Sync()
}
