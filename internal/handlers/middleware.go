package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"earthwords/internal/security"
	"earthwords/internal/validation"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const LearnerContextKey ContextKey = "learner"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens  *security.TokenIssuer
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *security.TokenIssuer, limiter *security.RateLimiter) *Middleware {
	return &Middleware{tokens: tokens, limiter: limiter}
}

// RequireLearner resolves the learner from the token cookie. Browsers without
// a valid token are given a fresh learner id and cookie.
func (m *Middleware) RequireLearner(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var learnerID string
		if cookie, err := r.Cookie(security.LearnerCookieName); err == nil {
			learnerID, err = m.tokens.Verify(cookie.Value)
			if err != nil {
				log.Printf("Discarding learner token: %v", err)
			}
		}

		if learnerID == "" {
			learnerID = security.NewLearnerID()
			token, expires, err := m.tokens.Issue(learnerID)
			if err != nil {
				respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Failed to issue learner token", err)
				return
			}
			http.SetCookie(w, security.CreateLearnerCookie(r, token, expires))
		}

		ctx := context.WithValue(r.Context(), LearnerContextKey, learnerID)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit limits requests per learner, or per client IP before a learner
// is known
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := GetLearnerFromContext(r.Context())
		if key == "" {
			key = security.GetClientIP(r)
		}
		if !m.limiter.Allow(key) {
			w.Header().Set("Retry-After", "60")
			respondWithError(w, http.StatusTooManyRequests, ErrTooManyRequests, "", nil)
			return
		}
		next(w, r)
	}
}

// pathWildcards are the route parameters checked by ValidatePath
var pathWildcards = []string{"wordId", "quizId", "chapter", "unit", "key"}

// ValidatePath rejects requests whose route parameters are not well formed
// identifiers
func ValidatePath(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, name := range pathWildcards {
			value := r.PathValue(name)
			if value == "" {
				continue
			}
			if err := validation.ValidateIdentifier(name, value); err != nil {
				respondWithError(w, http.StatusBadRequest, err.Error(), "", nil)
				return
			}
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetLearnerFromContext retrieves the learner id from the request context
func GetLearnerFromContext(ctx context.Context) string {
	id, _ := ctx.Value(LearnerContextKey).(string)
	return id
}
