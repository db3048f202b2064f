package testutil

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewSimpleLogger development logger with short timestamps. Debug level only if debug == true
func NewSimpleLogger(debug bool) *zap.SugaredLogger {
	return NewNamedLogger("", debug)
}

func NewNamedLogger(name string, debug bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("04:05.000")
	lvl := zapcore.InfoLevel
	if debug {
		lvl = zapcore.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := cfg.Build(zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		panic(err)
	}
	if name != "" {
		log = log.Named(name)
	}
	return log.Sugar()
}
