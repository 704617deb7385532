package service

import "errors"

// ErrInvalidURL is returned when the destination is not a well-formed
// absolute URL. Destinations are validated at creation only.
var ErrInvalidURL = errors.New("invalid destination url")

// ErrExpired is returned by Resolve for a link whose expiry is in the
// past. Distinct from storage.ErrNotFound so the boundary can answer
// 410 instead of 404.
var ErrExpired = errors.New("link expired")

// ErrExhaustedAttempts is returned when all generation attempts are
// spent without producing a unique code.
var ErrExhaustedAttempts = errors.New("exhausted attempts to generate a unique short code")
