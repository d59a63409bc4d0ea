package app

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// BearerToken extracts the credential from an Authorization header value.
// Absent or non-bearer headers yield ok == false.
func BearerToken(header string) (token string, ok bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token = header[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

// RequestHasValidBearer reports whether r carries the configured token.
func (app *Application) RequestHasValidBearer(r *http.Request) bool {
	token, ok := BearerToken(r.Header.Get("Authorization"))
	if !ok {
		return false
	}
	return app.IsValidToken(token)
}

// IsValidToken compares token against the configured one in constant time.
// An unconfigured token never matches.
func (app *Application) IsValidToken(token string) bool {
	expected := app.Config.Token
	if expected == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expected)) == 1
}

// HasUpstreamCredential reports whether the travel API token is configured.
func (app *Application) HasUpstreamCredential() bool {
	return app.Config.NSToken != ""
}
