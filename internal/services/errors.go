package services

import "errors"

// Client-facing not-found conditions; everything else propagating out of
// a service is treated as a server failure by the HTTP boundary.
var (
	ErrCaseNotFound        = errors.New("case not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)
