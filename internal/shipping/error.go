package shipping

import "errors"

var (
	ErrServiceUnavailable = errors.New("shipping service unavailable")
	ErrUpstreamRejected   = errors.New("shipping request rejected")
	ErrInvalidWeight      = errors.New("total weight must be greater than zero")
	ErrUnknownCourier     = errors.New("unknown courier")
	ErrOriginNotSet       = errors.New("shipping origin city is not configured")
)
