package auth

import (
	"context"
	"strings"
)

// StaticVerifier resolves tokens from a fixed token->subject table. Used for
// local development when no Redis session store is configured.
type StaticVerifier struct {
	tokens map[string]string
}

// NewStaticVerifier creates a verifier from a "token=subject,token=subject"
// specification (the AUTH_STATIC_TOKENS format).
func NewStaticVerifier(spec string) *StaticVerifier {
	tokens := make(map[string]string)
	for _, pair := range strings.Split(spec, ",") {
		token, subject, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found || token == "" || subject == "" {
			continue
		}
		tokens[token] = subject
	}

	return &StaticVerifier{tokens: tokens}
}

// Verify resolves the token against the static table.
func (v *StaticVerifier) Verify(_ context.Context, token string) (string, error) {
	subject, ok := v.tokens[token]
	if !ok {
		return "", ErrInvalidSession
	}
	return subject, nil
}
