package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The logger is package-local on purpose: the client raises the level for
// debug verbosity without touching the process-wide zap globals. The level
// is atomic so SetLevel takes effect on the already-built core.
var (
	atom   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger *zap.SugaredLogger
)

func init() {
	conf := zap.NewProductionConfig()
	conf.Level = atom

	l, err := conf.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	logger = l.Sugar()
}

func Debug(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Warn(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func Error(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func Fatal(format string, args ...interface{}) {
	logger.Fatalf(format, args...)
}

func SetLevel(level Level) {
	atom.SetLevel(level.zapLevel())
}

type Level int

const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARNING:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
