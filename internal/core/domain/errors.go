package domain

import "errors"

var (
	ErrCredentialExpired = errors.New("credential expired")
	ErrCredentialRevoked = errors.New("credential revoked")
	ErrAccountNotFound   = errors.New("account not found")
	ErrUnknownRole       = errors.New("unknown role")
	ErrBankNotFound      = errors.New("bank not found")
	ErrBankExists        = errors.New("bank already exists")
)
