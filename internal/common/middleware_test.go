package common

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestAuthMiddleware(t *testing.T) {
	verifier := NewTokenVerifier(testConfig("secret"))
	token, err := verifier.GenerateToken(Identity{UID: "uid-42"})
	require.NoError(t, err)

	var seen *Identity
	handler := AuthMiddleware(verifier, quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusNoContent},
		{"lowercase scheme", "bearer " + token, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"bad token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusNoContent {
				require.NotNil(t, seen)
				assert.Equal(t, "uid-42", seen.UID)
			} else {
				assert.Nil(t, seen)
				assert.Contains(t, rec.Body.String(), "Unauthorized")
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var got string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc", got)
}

func TestRateLimiter_PerIdentity(t *testing.T) {
	limiter := NewRateLimiter(0.0001, 2, quietLogger())
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(uid string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithIdentity(req.Context(), &Identity{UID: uid}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusOK, call("a"))
	assert.Equal(t, http.StatusTooManyRequests, call("a"))
	assert.Equal(t, http.StatusOK, call("b"))

	limiter.Cleanup(0)
	assert.Equal(t, http.StatusOK, call("a"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	called := false
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/steps/me", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, called)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{fmt.Errorf("%w: user 1", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: self request", ErrInvalidOperation), http.StatusBadRequest},
		{ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("send: %w", ErrConflict), http.StatusConflict},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrConfiguration, http.StatusInternalServerError},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "err: %v", tc.err)
	}
}

func TestWriteServiceError_HidesInternalMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteServiceError(rec, errors.New("dial tcp: refused"), "Failed to fetch friends")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch friends")
	assert.NotContains(t, rec.Body.String(), "refused")

	rec = httptest.NewRecorder()
	WriteServiceError(rec, fmt.Errorf("%w: friend request 9", ErrNotFound), "unused")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "friend request 9")
}
