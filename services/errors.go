package services

import "errors"

// Domain rejections surfaced to callers. Cooldown and TooFar are user-facing
// and must not be retried; NotFound and Unauthorized map to the usual HTTP
// statuses. Store failures after retry exhaustion come back wrapped as
// ErrUnavailable.
var (
	ErrNotFound      = errors.New("document not found")
	ErrUnauthorized  = errors.New("caller is not allowed to perform this action")
	ErrCooldown      = errors.New("check-in cooldown has not elapsed")
	ErrTooFar        = errors.New("too far from the venue to check in")
	ErrUnknownAction = errors.New("unknown engagement action")
	ErrUnavailable   = errors.New("store temporarily unavailable")
)
