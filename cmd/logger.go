package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger creates the shared logger with its level taken from LOG_LEVEL.
func InitLogger() {
	Logger = logrus.New()
	Logger.SetOutput(os.Stderr)

	// Set log level from environment variable
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // Default to info
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		// Can't use Logger here since it might not be set up yet
		fmt.Printf("Invalid LOG_LEVEL '%s', defaulting to 'info'\n", logLevel)
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// setVerbose raises log to DebugLevel when verbose is set. A quieter
// LOG_LEVEL is left alone otherwise.
func setVerbose(log *logrus.Logger, verbose bool) {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
}
