package domain

import "time"

const (
	RoleAdmin     = "admin"
	RoleDataEntry = "dataEntry"
)

// Resource names the catalog collections a dataEntry account can be granted
// write access to. Privilege maps are keyed by these values only.
const (
	ResourceCategories = "categories"
	ResourceBrands     = "brands"
	ResourceDeals      = "deals"
	ResourceBlogs      = "blogs"
	ResourceSeasons    = "seasons"
)

// Resources lists every grantable resource name.
var Resources = []string{
	ResourceCategories,
	ResourceBrands,
	ResourceDeals,
	ResourceBlogs,
	ResourceSeasons,
}

// KnownResource reports whether name is a grantable resource.
func KnownResource(name string) bool {
	for _, r := range Resources {
		if r == name {
			return true
		}
	}
	return false
}

// Privileges maps a resource name to whether the account may create/update it.
// Absent keys are not granted.
type Privileges map[string]bool

// Has reports whether the named resource is explicitly granted.
func (p Privileges) Has(resource string) bool {
	return p[resource]
}

// Account models an authenticated actor in the system.
//
// PasswordHash is never serialized; redaction is structural, not per-handler.
type Account struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Privileges   Privileges `json:"privileges"`
	IsActive     bool       `json:"isActive"`
	CreatedBy    string     `json:"createdBy,omitempty"`
	UpdatedBy    string     `json:"updatedBy,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Can reports whether the account may create/update the named resource.
// Admins pass unconditionally; dataEntry accounts need an explicit grant.
// Unknown resource names are never implicitly granted.
func (a *Account) Can(resource string) bool {
	if a.Role == RoleAdmin {
		return true
	}
	return a.Role == RoleDataEntry && a.Privileges.Has(resource)
}

// HasRole reports whether the account's role is one of the given roles.
func (a *Account) HasRole(roles ...string) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
