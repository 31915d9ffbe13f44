package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bancaplus/backoffice/internal/core/domain"
)

type stubVerifier struct {
	err error
}

func (s stubVerifier) Verify(context.Context, string) (*domain.IdentityClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.IdentityClaims{Subject: "ext-1"}, nil
}

func TestVerifyResult(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{fmt.Errorf("jwt: %w", domain.ErrCredentialExpired), "expired"},
		{domain.ErrCredentialRevoked, "revoked"},
		{errors.New("malformed"), "error"},
	}

	for _, tc := range tests {
		if got := verifyResult(tc.err); got != tc.want {
			t.Errorf("verifyResult(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestInstrumentVerifier_PassesThrough(t *testing.T) {
	boom := errors.New("boom")

	claims, err := InstrumentVerifier(stubVerifier{}).Verify(context.Background(), "tok")
	if err != nil || claims.Subject != "ext-1" {
		t.Fatalf("unexpected result: %+v, %v", claims, err)
	}

	if _, err := InstrumentVerifier(stubVerifier{err: boom}).Verify(context.Background(), "tok"); !errors.Is(err, boom) {
		t.Fatalf("expected error to pass through, got %v", err)
	}
}
