package health

import "errors"

var (
	// ErrCheckFailed is returned when one or more health checks fail.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout wraps a check error caused by the overall check deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)
