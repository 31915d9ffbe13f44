package domain

// Reason classifies a locally resolved rejection.
type Reason uint8

const (
	ReasonNone Reason = iota
	ReasonMissingCredential
	ReasonRevokedCredential
	ReasonExpiredCredential
	ReasonUnknownAccount
	ReasonRoleNotSpecified
	ReasonNotAllowed
)

var reasonNames = [...]string{
	ReasonNone:              "none",
	ReasonMissingCredential: "missing_credential",
	ReasonRevokedCredential: "revoked_credential",
	ReasonExpiredCredential: "expired_credential",
	ReasonUnknownAccount:    "unknown_account",
	ReasonRoleNotSpecified:  "role_not_specified",
	ReasonNotAllowed:        "not_allowed",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Decision is the outcome of an authorization check that did not fail with a
// system error: either the request may proceed as Account, or it is rejected
// for Reason.
type Decision struct {
	Account *Account
	Reason  Reason
}

// Allow builds a decision that lets the request proceed.
func Allow(a *Account) Decision { return Decision{Account: a} }

// Reject builds a locally resolved rejection.
func Reject(r Reason) Decision { return Decision{Reason: r} }

// Allowed reports whether the request may proceed.
func (d Decision) Allowed() bool { return d.Reason == ReasonNone && d.Account != nil }
