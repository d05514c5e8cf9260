package services

import "errors"

// Domain errors resolved at the HTTP boundary into status codes.
var (
	// ErrNotFound — a referenced id (user, product, order, association) is absent.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken — registration attempted with an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — login failed. Covers both unknown email and wrong
	// password so the response cannot be used to probe for accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
