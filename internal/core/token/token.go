// Package token issues and verifies the stateless session tokens used by the
// auth API. Tokens are HMAC-signed JWTs carrying the user identity, email,
// and role; validity is determined purely by signature and expiry, there is
// no server-side revocation.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the session lifetime: 7 days from issuance.
const DefaultTTL = 7 * 24 * time.Hour

// ErrInvalidToken covers every verification failure: bad signature, foreign
// signing algorithm, malformed token, or elapsed expiry.
var ErrInvalidToken = errors.New("token inválido o expirado")

// Claims is the payload embedded in every session token. The role is fixed
// at issuance and trusted until expiry; it is never re-checked against the
// directory on later requests.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a process-wide secret injected
// once at startup.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity, expiring ttl from now.
func (c *Codec) Issue(userID int64, email, rol string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Rol:    rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses and validates raw, returning its claims. The signing
// algorithm is pinned to HS256; the token header is never trusted to pick it.
func (c *Codec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
