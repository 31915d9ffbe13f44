package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
)

var (
	errMissingSubject  = errors.New("credential has no subject")
	errMissingIssuedAt = errors.New("credential has no issued-at")
)

// Config holds the settings of the identity authority whose credentials
// are accepted.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	// Now overrides the clock; used by tests.
	Now func() time.Time
}

type identityClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 credentials with strict checks: exp and iat are
// mandatory (iat is enforced in Verify, the parser only checks it when
// present), and a credential issued before the subject's revocation instant
// is rejected.
type JWTVerifier struct {
	secret      []byte
	parser      *jwt.Parser
	revocations ports.RevocationStore
}

// NewJWTVerifier builds a verifier. revocations may be nil, in which case no
// revocation check is performed.
func NewJWTVerifier(cfg Config, revocations ports.RevocationStore) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	if cfg.Now != nil {
		opts = append(opts, jwt.WithTimeFunc(cfg.Now))
	}

	return &JWTVerifier{
		secret:      []byte(cfg.Secret),
		parser:      jwt.NewParser(opts...),
		revocations: revocations,
	}
}

// Verify satisfies ports.CredentialVerifier.
func (v *JWTVerifier) Verify(ctx context.Context, token string) (*domain.IdentityClaims, error) {
	claims := &identityClaims{}
	tkn, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, domain.ErrCredentialExpired
	}
	if err != nil {
		return nil, fmt.Errorf("parse credential: %w", err)
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	if claims.Subject == "" {
		return nil, errMissingSubject
	}
	if claims.IssuedAt == nil {
		return nil, errMissingIssuedAt
	}

	if err := v.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	identity := &domain.IdentityClaims{Subject: claims.Subject}
	if claims.Role != "" {
		// An unrecognised role claim is ignored; the stored account role decides.
		identity.Role, _ = domain.ParseRole(claims.Role)
	}
	return identity, nil
}

func (v *JWTVerifier) checkRevoked(ctx context.Context, claims *identityClaims) error {
	if v.revocations == nil {
		return nil
	}
	after, ok, err := v.revocations.RevokedAfter(ctx, claims.Subject)
	if err != nil {
		return fmt.Errorf("revocation lookup: %w", err)
	}
	if !ok {
		return nil
	}
	if claims.IssuedAt.Time.Before(after) {
		return domain.ErrCredentialRevoked
	}
	return nil
}
