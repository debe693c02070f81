package domain

import "errors"

// Sentinel errors for domain error conditions.
// Use errors.Is() for matching - never compare error strings.
var (
	// ErrInvalidPort signals a PORT value that parsed but falls outside
	// 1..MaxPort. Unparseable values fall back to DefaultPort instead.
	ErrInvalidPort = errors.New("port outside valid range")
)
