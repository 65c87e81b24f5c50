package utils

import (
	"log"

	"frontdesk/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger shared by every front-desk component.
var Logger *zap.Logger

// InitializeLogger builds the shared logger: JSON output at info level in
// production, colored console output at debug level otherwise. LOG_LEVEL
// overrides the default level when it parses.
func InitializeLogger() {
	var cfg zap.Config

	if config.IsProduction() {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	if raw := config.AppConfig.LogLevel; raw != "" {
		if level, err := zapcore.ParseLevel(raw); err == nil {
			cfg.Level = zap.NewAtomicLevelAt(level)
		}
	}

	var err error
	Logger, err = cfg.Build()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
}

// GetLogger returns the shared logger, building it on first use.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitializeLogger()
	}
	return Logger
}
