package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileConfig for rotating log files
type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// LogConfig ...
type LogConfig struct {
	Mode  string        `mapstructure:"mode"`
	Level string        `mapstructure:"level"`
	File  LogFileConfig `mapstructure:"file"`
}

func (c LogConfig) isDebug() bool {
	return strings.EqualFold(strings.TrimSpace(c.Mode), "debug")
}

func (c LogConfig) atomicLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if c.Level == "" {
		return level
	}
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return level
}

func newEncoderConfig() zapcore.EncoderConfig {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	encoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	return encoderConfig
}

// NewLogger creates a zap logger, json to stdout in production and console in debug mode.
// When file output is enabled, entries are also written to a rotating file.
func NewLogger(conf LogConfig) *zap.Logger {
	level := conf.atomicLevel()
	encoderConfig := newEncoderConfig()

	var encoder zapcore.Encoder
	if conf.isDebug() {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	if conf.File.Enabled {
		writer := &lumberjack.Logger{
			Filename:   conf.File.Filename,
			MaxSize:    conf.File.MaxSizeMB,
			MaxBackups: conf.File.MaxBackups,
			MaxAge:     conf.File.MaxAgeDays,
			Compress:   conf.File.Compress,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(newEncoderConfig()),
			zapcore.AddSync(writer),
			level,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}
