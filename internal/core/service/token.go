package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sesamelabs/identity-service/internal/core/domain"
)

// DefaultTokenTTL is the fixed session lifetime. There is no refresh or
// extension mechanism; an expired token means a new login.
const DefaultTokenTTL = 2 * time.Hour

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// sessionClaims is the wire shape of the token payload. The registered
// claims carry sub/iat/exp; username and role ride as private claims.
type sessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenAuthority issues and verifies HS256-signed session tokens. It is
// the only component that handles the signing secret; everything else
// treats tokens as opaque strings.
type TokenAuthority struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenAuthority creates a TokenAuthority. A non-positive ttl falls
// back to DefaultTokenTTL.
func NewTokenAuthority(secret []byte, ttl time.Duration) *TokenAuthority {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenAuthority{secret: secret, ttl: ttl}
}

// Issue signs a token asserting the given identity, valid from now until
// now+ttl.
func (a *TokenAuthority) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(a.secret)
}

// Verify checks the signature and validity window and returns the decoded
// claims. The signing algorithm is pinned to HS256 inside the keyfunc, so
// a token re-signed under another method fails before the key is used.
// Returns ErrTokenExpired for an otherwise-valid expired token and
// ErrTokenInvalid for everything else.
func (a *TokenAuthority) Verify(tokenString string) (*domain.SessionClaims, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	out := &domain.SessionClaims{
		Subject:  claims.Subject,
		Username: claims.Username,
		Role:     claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
