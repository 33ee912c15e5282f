package logging

import (
	"log"
	"os"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current Level = LevelWarn

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

// InitFromEnv sets the log level based on LOG_LEVEL (debug|info|warn|error).
// Warnings-only is the default.
func InitFromEnv() {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		current = LevelDebug
	case "info":
		current = LevelInfo
	case "error":
		current = LevelError
	default:
		current = LevelWarn
	}
}

// SetLevel overrides the current level, e.g. for a verbose flag.
func SetLevel(l Level) {
	current = l
}

func Debugf(format string, args ...interface{}) {
	if current <= LevelDebug {
		log.Printf("DEBUG: "+format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if current <= LevelInfo {
		log.Printf("INFO: "+format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if current <= LevelWarn {
		log.Printf("WARNING: "+format, args...)
	}
}

func Errorf(format string, args ...interface{}) {
	log.Printf("ERROR: "+format, args...)
}
