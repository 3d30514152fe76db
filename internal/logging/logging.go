package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls the process-wide logger
type Options struct {
	// Environment selects the default level: development=debug, production=error, otherwise info
	Environment string
	// Level overrides the environment default when it parses as a logrus level
	Level string
	// File, when set, adds a rotating file sink next to stdout
	File string
}

// Setup configures logger with a JSON formatter, level and outputs.
// The returned closer releases the file sink and is never nil.
func Setup(logger *logrus.Logger, opts Options) io.Closer {
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(levelFor(opts))

	if opts.File == "" {
		logger.SetOutput(os.Stdout)
		return nopCloser{}
	}

	rotating := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    10, // MB
		MaxBackups: 7,
		MaxAge:     28, // days
		Compress:   true,
	}
	logger.SetOutput(io.MultiWriter(os.Stdout, rotating))
	return rotating
}

func levelFor(opts Options) logrus.Level {
	if opts.Level != "" {
		if level, err := logrus.ParseLevel(opts.Level); err == nil {
			return level
		}
	}

	switch opts.Environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
