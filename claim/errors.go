package claim

import "github.com/pkg/errors"

// business rule violations reported by the coordinator. Callers should
// compare against errors.Cause(err).
var (
	ErrNotFound       = errors.New("record not found")
	ErrForbidden      = errors.New("operation not permitted for this principal")
	ErrInvalidState   = errors.New("transition not allowed from the current status")
	ErrExpired        = errors.New("donation has expired")
	ErrDuplicateClaim = errors.New("donation already claimed by this ngo")
	ErrConflict       = errors.New("donation was updated by another request")
)
