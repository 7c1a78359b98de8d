package domain

import (
	"errors"
	"fmt"
)

// ErrOrgNotFound indicates the organization slug did not resolve.
var ErrOrgNotFound = errors.New("organization not found")

// ErrNotMember indicates the caller does not belong to the organization.
var ErrNotMember = errors.New("caller is not a member of the organization")

// UpstreamError carries an upstream provider failure so handlers can pass the
// original status and message through to the caller.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream error (status %d)", e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
