package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

var testUser = &domain.User{
	ID:       "user-1",
	Username: "alice",
	Role:     domain.RoleUser,
}

func TestTokenAuthority_IssueVerify(t *testing.T) {
	a := NewTokenAuthority([]byte("secret"), time.Hour)

	token, err := a.Issue(testUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Fatalf("expected three-segment token, got %q", token)
	}

	claims, err := a.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.Subject != "user-1" || claims.Username != "alice" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt) {
		t.Fatalf("expiry %v not after issuance %v", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestTokenAuthority_RejectsTamperedPayload(t *testing.T) {
	a := NewTokenAuthority([]byte("secret"), time.Hour)

	token, err := a.Issue(testUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	// flip one byte in the payload segment
	mid := len(payload) / 2
	if payload[mid] == 'A' {
		payload[mid] = 'B'
	} else {
		payload[mid] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := a.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered payload, got %v", err)
	}
}

func TestTokenAuthority_RejectsWrongSecret(t *testing.T) {
	a := NewTokenAuthority([]byte("secret"), time.Hour)
	b := NewTokenAuthority([]byte("other-secret"), time.Hour)

	token, err := a.Issue(testUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := b.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestTokenAuthority_RejectsExpired(t *testing.T) {
	a := NewTokenAuthority([]byte("secret"), time.Hour)

	now := time.Now()
	expired := sessionClaims{
		Username: "alice",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := a.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenAuthority_RejectsForeignAlgorithm(t *testing.T) {
	a := NewTokenAuthority([]byte("secret"), time.Hour)

	claims := sessionClaims{
		Username: "alice",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	// signed with the right secret but the wrong algorithm
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS384, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := a.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for HS384 token, got %v", err)
	}
}

func TestTokenAuthority_RejectsMissingSubject(t *testing.T) {
	a := NewTokenAuthority([]byte("secret"), time.Hour)

	claims := sessionClaims{
		Username: "alice",
		Role:     domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	if _, err := a.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for missing subject, got %v", err)
	}
}

func TestTokenAuthority_RejectsGarbage(t *testing.T) {
	a := NewTokenAuthority([]byte("secret"), time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := a.Verify(token); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", token, err)
		}
	}
}
