package domain

import "errors"

// Credential / identity errors. Account lookup deliberately reports a missing
// account and a deactivated account as the same ErrAccountNotFound so callers
// cannot distinguish the two (enumeration resistance).
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrUnknownPrivilege   = errors.New("unknown privilege")
)

// Token errors. Kept distinct for diagnostics and tests; the HTTP layer maps
// all three to one generic unauthorized response.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// Catalog errors.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrBrandNotFound    = errors.New("brand not found")
	ErrDealNotFound     = errors.New("deal not found")
	ErrBlogNotFound     = errors.New("blog not found")
	ErrSeasonNotFound   = errors.New("season not found")
)
