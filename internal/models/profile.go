package models

import "strings"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleCustomer:
		return RoleCustomer, true
	case RoleBusiness:
		return RoleBusiness, true
	}
	return "", false
}

func (r Role) String() string {
	return string(r)
}

// Dashboard is the landing page of an authenticated user with this role.
func (r Role) Dashboard() string {
	if r == RoleBusiness {
		return "/business/dashboard"
	}
	return "/dashboard"
}

// Profile is implemented only by *Customer and *Business.
type Profile interface {
	Role() Role
	DisplayName() string
	ContactEmail() string
	isProfile()
}
