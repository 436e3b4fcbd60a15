package usecase

import "errors"

// Ownership failures surface as ErrNotFound so the API never reveals whether a
// foreign resource exists.
var (
	ErrNotFound            = errors.New("not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountSuspended    = errors.New("account is suspended")
	ErrTokenExpired        = errors.New("token expired or invalid")
	ErrDuplicateName       = errors.New("a folder with this name already exists here")
	ErrCircularStructure   = errors.New("circular folder structure")
	ErrInsufficientBalance = errors.New("requested amount exceeds available balance")
	ErrAlreadyDecided      = errors.New("payout has already been decided")
)
