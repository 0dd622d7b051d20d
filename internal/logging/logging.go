package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the program-wide sugared logger.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger writing Info and above to stderr,
// or Debug and above when verbose is set.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return New(zapcore.Lock(os.Stderr), level, isTerminal(os.Stderr))
}

// New builds a logger on an arbitrary sink.
func New(w zapcore.WriteSyncer, level zapcore.Level, color bool) *Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if color {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), w, level)
	return &Logger{zap.New(core).Sugar()}
}

func Nop() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
