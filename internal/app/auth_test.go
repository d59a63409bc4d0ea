package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"bang.dev/gateway/internal/appconf"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"valid", "Bearer secret", "secret", true},
		{"empty header", "", "", false},
		{"prefix only", "Bearer ", "", false},
		{"wrong scheme", "Basic c2VjcmV0", "", false},
		{"lowercase scheme", "bearer secret", "", false},
		{"no space", "Bearersecret", "", false},
		{"token keeps inner spaces", "Bearer a b", "a b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, ok := BearerToken(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestRequestHasValidBearer(t *testing.T) {
	application := &Application{Config: appconf.Config{Token: "secret"}}

	tests := []struct {
		name     string
		header   string
		expected bool
	}{
		{"matching token", "Bearer secret", true},
		{"wrong token", "Bearer nope", false},
		{"token prefix", "Bearer secre", false},
		{"token suffix", "Bearer secrets", false},
		{"missing header", "", false},
		{"raw token", "secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/trains", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.expected, application.RequestHasValidBearer(req))
		})
	}
}

func TestIsValidTokenWithoutConfiguredToken(t *testing.T) {
	application := &Application{}
	assert.False(t, application.IsValidToken(""))
	assert.False(t, application.IsValidToken("anything"))
}

func TestHasUpstreamCredential(t *testing.T) {
	assert.False(t, (&Application{}).HasUpstreamCredential())
	assert.True(t, (&Application{Config: appconf.Config{NSToken: "x"}}).HasUpstreamCredential())
}
