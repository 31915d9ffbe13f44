package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bancaplus/backoffice/internal/core/domain"
	"github.com/bancaplus/backoffice/internal/core/ports"
)

// bearerPrefix is matched literally: callers send it lowercase.
const bearerPrefix = "bearer"

const defaultCallTimeout = 10 * time.Second

type authorizationService struct {
	verifier    ports.CredentialVerifier
	accounts    *AccountResolver
	permissions *PermissionResolver
	callTimeout time.Duration
	log         zerolog.Logger
}

// NewAuthorizationService returns the Authorizer that chains credential
// verification, account resolution and the grant check. Each collaborator
// call is bounded by callTimeout (defaultCallTimeout when <= 0).
func NewAuthorizationService(
	verifier ports.CredentialVerifier,
	accounts *AccountResolver,
	permissions *PermissionResolver,
	callTimeout time.Duration,
	log zerolog.Logger,
) ports.Authorizer {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &authorizationService{
		verifier:    verifier,
		accounts:    accounts,
		permissions: permissions,
		callTimeout: callTimeout,
		log:         log,
	}
}

// Authorize runs the decision sequence. Rejections come back as a Decision
// with a nil error; verifier or datastore failures come back as errors.
func (s *authorizationService) Authorize(ctx context.Context, rawHeader string, req domain.Requirement) (domain.Decision, error) {
	// 1. Credential must be present.
	token := credentialFromHeader(rawHeader)
	if token == "" {
		return s.reject(domain.ReasonMissingCredential, req), nil
	}

	// 2. Verify against the identity authority.
	claims, err := s.verify(ctx, token)
	switch {
	case errors.Is(err, domain.ErrCredentialRevoked):
		return s.reject(domain.ReasonRevokedCredential, req), nil
	case errors.Is(err, domain.ErrCredentialExpired):
		return s.reject(domain.ReasonExpiredCredential, req), nil
	case err != nil:
		return domain.Decision{}, fmt.Errorf("verify credential: %w", err)
	}

	// 3. Resolve the local account.
	account, err := s.resolve(ctx, claims.Subject)
	if err != nil {
		return domain.Decision{}, err
	}
	if account == nil {
		return s.reject(domain.ReasonUnknownAccount, req), nil
	}

	// 4. Any authenticated account passes when no capability is required.
	capability, required := req.Capability()
	if !required {
		return domain.Allow(account), nil
	}

	// 5. Capability check: role first, then the grant relation.
	if account.Role.IsZero() {
		return s.reject(domain.ReasonRoleNotSpecified, req), nil
	}
	granted, err := s.hasGrant(ctx, account.Role, capability)
	if err != nil {
		return domain.Decision{}, err
	}
	if !granted {
		return s.reject(domain.ReasonNotAllowed, req), nil
	}

	return domain.Allow(account), nil
}

func (s *authorizationService) verify(ctx context.Context, token string) (*domain.IdentityClaims, error) {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.verifier.Verify(ctx, token)
}

func (s *authorizationService) resolve(ctx context.Context, subject string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.accounts.Resolve(ctx, subject)
}

func (s *authorizationService) hasGrant(ctx context.Context, role domain.Role, capability domain.Capability) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return s.permissions.HasGrant(ctx, role, capability)
}

func (s *authorizationService) reject(reason domain.Reason, req domain.Requirement) domain.Decision {
	s.log.Debug().
		Str("reason", reason.String()).
		Str("requirement", req.String()).
		Msg("request rejected")
	return domain.Reject(reason)
}

// credentialFromHeader strips the scheme prefix and surrounding whitespace.
// A header without the prefix is passed through so the verifier decides.
func credentialFromHeader(raw string) string {
	return strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
}
