package services

import "errors"

// Shared failure taxonomy. Handlers map these onto HTTP statuses with
// errors.Is, so services wrap them with context instead of inventing new
// sentinels per call site.
var (
	ErrNotFound        = errors.New("not found")
	ErrAccessDenied    = errors.New("access denied")
	ErrAlreadyExists   = errors.New("already exists")
	ErrLinkExpired     = errors.New("invite link expired")
	ErrInvalidArgument = errors.New("invalid argument")
)
