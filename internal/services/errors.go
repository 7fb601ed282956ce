package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidAmount      = errors.New("total amount must be greater than 0")
	ErrNegativeReceived   = errors.New("amount received cannot be negative")
	ErrInvalidKind        = errors.New("transaction type must be Received or Given")
	ErrInvalidMonth       = errors.New("month filter must be YYYY-MM or All")
	ErrEmptyName          = errors.New("name is required")
	ErrNotFound           = errors.New("not found")
)
