package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	goredis "github.com/redis/go-redis/v9"

	"github.com/bancaplus/backoffice/internal/core/domain"
	redisdb "github.com/bancaplus/backoffice/internal/infrastructure/db/redis"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type stubRevocations struct {
	after map[string]time.Time
	err   error
}

func (s *stubRevocations) RevokedAfter(_ context.Context, subject string) (time.Time, bool, error) {
	if s.err != nil {
		return time.Time{}, false, s.err
	}
	at, ok := s.after[subject]
	return at, ok, nil
}

func (s *stubRevocations) Revoke(_ context.Context, subject string, at time.Time) error {
	s.after[subject] = at
	return nil
}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  "ext-42",
		"role": "seller",
		"iss":  "identity.bancaplus",
		"iat":  fixedNow.Add(-time.Minute).Unix(),
		"exp":  fixedNow.Add(time.Hour).Unix(),
	}
}

func newVerifier(rev *stubRevocations) *JWTVerifier {
	cfg := Config{Secret: "secret", Issuer: "identity.bancaplus", Now: func() time.Time { return fixedNow }}
	if rev == nil {
		return NewJWTVerifier(cfg, nil)
	}
	return NewJWTVerifier(cfg, rev)
}

func TestJWTVerifier_Valid(t *testing.T) {
	v := newVerifier(&stubRevocations{after: map[string]time.Time{}})

	claims, err := v.Verify(context.Background(), sign(t, "secret", validClaims()))
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "ext-42" || claims.Role != domain.RoleSeller {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTVerifier_Expired(t *testing.T) {
	c := validClaims()
	c["exp"] = fixedNow.Add(-time.Second).Unix()

	_, err := newVerifier(nil).Verify(context.Background(), sign(t, "secret", c))
	if !errors.Is(err, domain.ErrCredentialExpired) {
		t.Fatalf("expected ErrCredentialExpired, got %v", err)
	}
}

func TestJWTVerifier_Revoked(t *testing.T) {
	rev := &stubRevocations{after: map[string]time.Time{"ext-42": fixedNow.Add(-30 * time.Second)}}

	_, err := newVerifier(rev).Verify(context.Background(), sign(t, "secret", validClaims()))
	if !errors.Is(err, domain.ErrCredentialRevoked) {
		t.Fatalf("expected ErrCredentialRevoked, got %v", err)
	}
}

func TestJWTVerifier_IssuedAfterRevocation(t *testing.T) {
	rev := &stubRevocations{after: map[string]time.Time{"ext-42": fixedNow.Add(-time.Hour)}}

	if _, err := newVerifier(rev).Verify(context.Background(), sign(t, "secret", validClaims())); err != nil {
		t.Fatalf("token issued after revocation must pass, got %v", err)
	}
}

func TestJWTVerifier_RevokedWithinIssuingSecond(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redisdb.NewRevocationStore(client, time.Hour)

	issued := fixedNow.Add(300 * time.Millisecond)
	if err := store.Revoke(context.Background(), "ext-42", fixedNow.Add(800*time.Millisecond)); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	c := validClaims()
	c["iat"] = jwt.NewNumericDate(issued)
	v := NewJWTVerifier(Config{Secret: "secret", Issuer: "identity.bancaplus", Now: func() time.Time { return fixedNow.Add(time.Second) }}, store)

	_, err := v.Verify(context.Background(), sign(t, "secret", c))
	if !errors.Is(err, domain.ErrCredentialRevoked) {
		t.Fatalf("credential issued earlier in the revocation second must be revoked, got %v", err)
	}
}

func TestJWTVerifier_Unclassified(t *testing.T) {
	noExp := validClaims()
	delete(noExp, "exp")
	noSub := validClaims()
	delete(noSub, "sub")
	noIat := validClaims()
	delete(noIat, "iat")
	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "someone-else"

	cases := map[string]string{
		"malformed":     "not-a-token",
		"bad signature": sign(t, "other-secret", validClaims()),
		"missing exp":   sign(t, "secret", noExp),
		"missing sub":   sign(t, "secret", noSub),
		"missing iat":   sign(t, "secret", noIat),
		"wrong issuer":  sign(t, "secret", wrongIssuer),
	}
	for name, token := range cases {
		_, err := newVerifier(nil).Verify(context.Background(), token)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if errors.Is(err, domain.ErrCredentialExpired) || errors.Is(err, domain.ErrCredentialRevoked) {
			t.Fatalf("%s: must stay unclassified, got %v", name, err)
		}
	}
}

func TestJWTVerifier_RevocationLookupFailure(t *testing.T) {
	boom := errors.New("redis down")
	rev := &stubRevocations{err: boom}

	_, err := newVerifier(rev).Verify(context.Background(), sign(t, "secret", validClaims()))
	if !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}
