package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/prismaglow/chatproxy/internal/auth"
	"github.com/prismaglow/chatproxy/internal/observability"
)

// Auth creates a middleware that verifies the bearer credential and injects
// the verified principal into the request context. Requests without a
// verified principal fail closed with 401 before reaching any handler.
func Auth(verifier auth.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := auth.BearerToken(r)
			if !ok {
				writeInvalidSession(w)
				return
			}

			subject, err := verifier.Verify(ctx, token)
			if err != nil {
				observability.FromContext(ctx).Info("session verification failed",
					observability.Error(err),
				)
				writeInvalidSession(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSubject(ctx, subject)))
		})
	}
}

func writeInvalidSession(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid session"})
}
