package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestCodec_IssueAndVerify(t *testing.T) {
	codec := NewCodec("secreto", time.Hour)

	raw, err := codec.Issue(42, "juan@test.com", "productor")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := codec.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "juan@test.com" {
		t.Fatalf("unexpected email: %s", claims.Email)
	}
	if claims.Rol != "productor" {
		t.Fatalf("unexpected rol: %s", claims.Rol)
	}
	if claims.ExpiresAt == nil || time.Until(claims.ExpiresAt.Time) > time.Hour {
		t.Fatalf("expiry not bounded by ttl: %v", claims.ExpiresAt)
	}
}

func TestCodec_DefaultTTL(t *testing.T) {
	codec := NewCodec("secreto", 0)

	raw, err := codec.Issue(1, "a@b.com", "empresa")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := codec.Verify(raw)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < DefaultTTL-time.Minute || remaining > DefaultTTL {
		t.Fatalf("expected ~7 day expiry, got %v", remaining)
	}
}

func TestCodec_RejectsExpired(t *testing.T) {
	codec := NewCodec("secreto", time.Hour)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: 7,
		Email:  "viejo@test.com",
		Rol:    "empresa",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	raw, err := expired.SignedString([]byte("secreto"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodec_RejectsForeignSecret(t *testing.T) {
	raw, err := NewCodec("otro-secreto", time.Hour).Issue(7, "x@y.com", "productor")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := NewCodec("secreto", time.Hour).Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign secret, got %v", err)
	}
}

func TestCodec_RejectsForeignAlgorithm(t *testing.T) {
	codec := NewCodec("secreto", time.Hour)

	// Same secret, different HMAC flavour: the pinned algorithm check must
	// refuse it regardless of the valid signature.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := tok.SignedString([]byte("secreto"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := codec.Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestCodec_RejectsGarbage(t *testing.T) {
	codec := NewCodec("secreto", time.Hour)
	if _, err := codec.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
