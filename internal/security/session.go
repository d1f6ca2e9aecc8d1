package security

import (
	"net/http"
	"time"
)

// LearnerCookieName holds the signed learner token
const LearnerCookieName = "learner_token"

// IsSecureRequest determines if the request is over HTTPS
// Checks TLS connection, X-Forwarded-Proto header (for reverse proxies), and URL scheme
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}

// CreateLearnerCookie creates the learner token cookie. Secure is set when the
// request came in over HTTPS.
func CreateLearnerCookie(r *http.Request, token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     LearnerCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteStrictMode,
	}
}

// CreateDeleteCookie expires the learner cookie
func CreateDeleteCookie(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     LearnerCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteStrictMode,
	}
}
