package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/mealplan/internal/logger"
)

// UserError pairs the notification shown to the user with the underlying cause.
// Err may be nil for failures detected locally.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UserError) Unwrap() error { return e.Err }

// NewUserError wraps err with a user-facing message
func NewUserError(message string, err error) *UserError {
	return &UserError{Message: message, Err: err}
}

// UserMessage returns the user-facing message carried by err, if any.
func UserMessage(err error) (string, bool) {
	var ue *UserError
	if stderrors.As(err, &ue) {
		return ue.Message, true
	}
	return "", false
}

// Format formats an error message with a consistent "Error: " prefix.
// User errors are shown by their message only; the cause goes to the log.
func Format(err error) string {
	if err == nil {
		return ""
	}
	if msg, ok := UserMessage(err); ok {
		return fmt.Sprintf("Error: %s", msg)
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
