package domain

// Account links an external identity to a local account id and an optional role.
type Account struct {
	ID         int64
	ExternalID string
	Role       Role
}

// IdentityClaims are the verified attributes decoded from a credential.
type IdentityClaims struct {
	Subject string
	// Role is the role carried by the credential, if any. The account's
	// stored role is what authorization decisions use.
	Role Role
}
