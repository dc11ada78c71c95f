package logging

import (
	"go.uber.org/zap"
)

// L is the process-wide logger. It starts as a nop so library code can log
// unconditionally; Init replaces it once the CLI has parsed flags.
var L = zap.NewNop().Sugar()

func Init(debug bool) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		panic("logger init: " + err.Error())
	}
	L = logger.Sugar()
}
