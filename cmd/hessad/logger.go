package main

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a logger writing to w. Development mode uses a colored
// console encoder at debug level; otherwise JSON at info level.
func newLogger(dev bool, w io.Writer) *zap.Logger {
	var (
		level   zapcore.Level
		encoder zapcore.Encoder
	)
	if dev {
		level = zapcore.DebugLevel
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	} else {
		level = zapcore.InfoLevel
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller())
}
