package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/willibrandon/vimarcade/internal/storage"
)

// FormatStorageError formats a score store error with actionable guidance.
func FormatStorageError(err error) string {
	if err == nil {
		return ""
	}
	errMsg := err.Error()

	if errors.Is(err, storage.ErrInvalidPlayer) {
		return fmt.Sprintf(
			"Invalid player name.\n\n"+
				"Names must be 1 to %d characters without control characters.\n"+
				"Set player.username in config.yaml or pass --player.\n"+
				"\nOriginal error: %s", storage.MaxUsernameLength, errMsg)
	}

	if strings.Contains(errMsg, "database is locked") || strings.Contains(errMsg, "SQLITE_BUSY") {
		return fmt.Sprintf(
			"Score database is busy.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Close other vimarcade windows that may be saving\n"+
				"  2. Retry in a moment\n"+
				"\nOriginal error: %s", errMsg)
	}

	if strings.Contains(errMsg, "unable to open database file") || strings.Contains(errMsg, "failed to create directory") {
		return fmt.Sprintf(
			"Cannot open the score database.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check that storage.path points to a writable location\n"+
				"  2. Check permissions on ~/.config/vimarcade\n"+
				"  3. Set storage.driver to 'none' to play without saving\n"+
				"\nOriginal error: %s", errMsg)
	}

	if strings.Contains(errMsg, "connection refused") {
		return fmt.Sprintf(
			"Connection refused: PostgreSQL is not accepting connections.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Verify PostgreSQL is running\n"+
				"  2. Check host and port in storage.dsn\n"+
				"  3. Set storage.driver to 'sqlite' to save scores locally\n"+
				"\nOriginal error: %s", errMsg)
	}

	if strings.Contains(errMsg, "authentication failed") {
		return fmt.Sprintf(
			"Authentication failed: Invalid username or password.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Verify the credentials in storage.dsn\n"+
				"  2. Ensure PGPASSWORD is set if the DSN omits the password\n"+
				"\nOriginal error: %s", errMsg)
	}

	if strings.Contains(errMsg, "database") && strings.Contains(errMsg, "does not exist") {
		return fmt.Sprintf(
			"Database does not exist.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Verify the database name in storage.dsn\n"+
				"  2. Create the database: createdb <database_name>\n"+
				"\nOriginal error: %s", errMsg)
	}

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded") {
		return fmt.Sprintf(
			"Score store timeout: the database did not respond in time.\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check network connectivity to the database server\n"+
				"  2. Raise storage.timeout in config.yaml\n"+
				"\nOriginal error: %s", errMsg)
	}

	// Default error formatting
	return fmt.Sprintf(
		"Score store error:\n\n"+
			"%s\n\n"+
			"Check your configuration in config.yaml or environment variables.\n"+
			"Run with --debug flag for detailed logs.", errMsg)
}

// Headline returns the first line of a formatted error.
func Headline(formatted string) string {
	line, _, _ := strings.Cut(formatted, "\n")
	return strings.TrimSpace(line)
}
