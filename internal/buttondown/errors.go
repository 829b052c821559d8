package buttondown

import (
	"errors"
)

var (
	// ErrNotConfigured is set on the Result when no API key was supplied.
	ErrNotConfigured = errors.New("buttondown api key is not configured")

	// ErrUnexpectedStatus is wrapped into the Result when the API answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("buttondown api returned unexpected status")
)
