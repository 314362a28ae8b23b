package errors

import "errors"

var ErrAlreadyDisposed = errors.New("counter already disposed")
var ErrStatsAlreadyInitialized = errors.New("stats already initialized")
var ErrInvalidConfig = errors.New("invalid configuration")
