// Package auth establishes the calling principal for a request. A bearer
// token is extracted from the Authorization header and checked against a
// session verifier; requests without a verified principal fail closed.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrInvalidSession indicates no verified principal could be established.
var ErrInvalidSession = errors.New("invalid session")

// Verifier checks a bearer token and returns the subject it belongs to.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type contextKey string

const subjectKey contextKey = "auth_subject"

// WithSubject injects the verified principal id into context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext extracts the verified principal id from context.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}

// BearerToken extracts the bearer credential from the request, if present.
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}

	return token, true
}
