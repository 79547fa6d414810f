package middleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// Secure adds security headers. The swagger UI at /docs/ relies on inline
// scripts, so no Content-Security-Policy is set here.
func Secure(isDevelopment bool) func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		IsDevelopment:      isDevelopment,
		ContentTypeNosniff: true,
		FrameDeny:          true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}).Handler
}
