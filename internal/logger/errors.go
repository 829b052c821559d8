package logger

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrAppNameIsEmpty means Log.AppName is unset; it tags every entry as "app".
	ErrAppNameIsEmpty = errors.New("logger: app name is required")
	// ErrServiceNameIsEmpty means Log.ServiceName is unset.
	ErrServiceNameIsEmpty = errors.New("logger: service name is required")
)

// ErrorHandler reports entries zerolog failed to write. It goes straight to
// stderr since the logger itself is the thing failing.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "notedraft: dropped log entry: %v\n", err)
}
