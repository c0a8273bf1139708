// Package log writes structured diagnostics to a daily file under where.Logs().
//
// Nothing is written unless logs.write is enabled; every call is then a no-op.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/epilist-cli/epilist/filesystem"
	"github.com/epilist-cli/epilist/key"
	"github.com/epilist-cli/epilist/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is an alias so callers do not import logrus directly.
type Fields = logrus.Fields

var (
	enabled bool
	logger  = logrus.New()
)

func init() {
	logger.SetOutput(io.Discard)
}

// Setup opens today's log file and configures format and level from viper.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logger.SetOutput(io.Discard)
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	configure(f)
	return nil
}

// SetOutput enables logging to w with the configured format and level. Used by tests.
func SetOutput(w io.Writer) {
	enabled = true
	configure(w)
}

func configure(w io.Writer) {
	logger.SetOutput(w)

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// With returns an entry carrying fields. It is safe to use when logging is disabled.
func With(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any) {
	if enabled {
		logger.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logger.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logger.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logger.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logger.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logger.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logger.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logger.Debugf(format, args...)
	}
}
