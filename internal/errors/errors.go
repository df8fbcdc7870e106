package errors

import (
	"fmt"
	"os"

	"github.com/mchou/travelpulse/internal/logger"
)

// Format renders an error for the terminal with the "Error: " prefix every
// command uses.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf is Format over a format string.
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs the error, prints it to stderr, and exits with code 1. A nil
// error does nothing.
func Fatal(err error) {
	if err != nil {
		logger.Error("Command failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf is Fatal over a format string.
func Fatalf(format string, args ...interface{}) {
	logger.Error("Command failed", "error", fmt.Sprintf(format, args...))
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
