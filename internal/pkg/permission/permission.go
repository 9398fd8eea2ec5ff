package permission

import (
	"database/sql/driver"
	"fmt"
)

// Permission is both the capability level stored on a token and the
// capability a caller asks for.
type Permission string

const (
	Admin           Permission = "ADMIN"
	ViewTokens      Permission = "VIEW_TOKENS"
	ViewSuggestions Permission = "VIEW_SUGGESTIONS"
	AddSuggestions  Permission = "ADD_SUGGESTIONS"
)

// rank of a stored level. VIEW_TOKENS is never stored, so it has no rank.
func rank(p Permission) int {
	switch p {
	case Admin:
		return 3
	case ViewSuggestions:
		return 2
	case AddSuggestions:
		return 1
	default:
		return 0
	}
}

// required rank for a requested capability; unknown requests can never be met.
func required(p Permission) int {
	switch p {
	case Admin, ViewTokens:
		return 3
	case ViewSuggestions:
		return 2
	case AddSuggestions:
		return 1
	default:
		return 4
	}
}

// Has reports whether a token stored with level holds the requested capability.
// ADD_SUGGESTIONS < VIEW_SUGGESTIONS < ADMIN, and VIEW_TOKENS is only held by ADMIN.
func Has(stored, requested Permission) bool {
	r := rank(stored)
	return r > 0 && r >= required(requested)
}

// Storable reports whether p may be persisted on a token.
func (p Permission) Storable() bool {
	return rank(p) > 0
}

// Parse converts s into a storable level.
func Parse(s string) (Permission, error) {
	p := Permission(s)
	if !p.Storable() {
		return "", fmt.Errorf("unknown permission %q", s)
	}
	return p, nil
}

func (p Permission) String() string { return string(p) }

// Scan implements the sql.Scanner interface for Permission
func (p *Permission) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*p = ""
	case string:
		*p = Permission(v)
	case []byte:
		*p = Permission(v)
	default:
		return fmt.Errorf("cannot scan %T into Permission", value)
	}
	return nil
}

// Value implements the driver.Valuer interface for Permission
func (p Permission) Value() (driver.Value, error) {
	return string(p), nil
}
