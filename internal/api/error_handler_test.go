package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	log := zerolog.Nop()

	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest, "invalid input"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrUserExists, http.StatusConflict, "username already taken"},
	}

	for _, tc := range cases {
		code, msg := resolveError(tc.err, log, c)
		if code != tc.code || msg != tc.msg {
			t.Errorf("%v: got (%d, %q), want (%d, %q)", tc.err, code, msg, tc.code, tc.msg)
		}
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	wrapped := errors.Join(errors.New("update user"), domain.ErrUserExists)
	code, _ := resolveError(wrapped, zerolog.Nop(), c)
	if code != http.StatusConflict {
		t.Fatalf("wrapped conflict: got %d, want 409", code)
	}
}

func TestResolveError_UnknownErrorIsOpaque(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	code, msg := resolveError(errors.New("mongo: socket closed"), zerolog.Nop(), c)
	if code != http.StatusInternalServerError {
		t.Fatalf("got %d, want 500", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	code, msg := resolveError(echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token"), zerolog.Nop(), c)
	if code != http.StatusUnauthorized || msg != "invalid or expired token" {
		t.Fatalf("got (%d, %q)", code, msg)
	}
}
