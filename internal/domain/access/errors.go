package access

import "errors"

var (
	ErrInvalidToken            = errors.New("invalid or expired token")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
)
