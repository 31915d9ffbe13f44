package domain

import "fmt"

// Role is the coarse-grained category of an account. The set is closed: the
// only valid roles are the package-level values below. The zero Role means
// the account carries no role.
type Role struct {
	id uint8
}

var (
	RoleSuperAdmin = Role{id: 1}
	RoleBanker     = Role{id: 2}
	RoleManager    = Role{id: 3}
	RoleSeller     = Role{id: 4}
)

var roleNames = map[Role]string{
	RoleSuperAdmin: "super_admin",
	RoleBanker:     "banker",
	RoleManager:    "manager",
	RoleSeller:     "seller",
}

// RoleFromID maps a stored numeric role id to a Role. Id 0 yields the zero
// Role with no error.
func RoleFromID(id int) (Role, error) {
	if id == 0 {
		return Role{}, nil
	}
	if id > 0 && id <= 255 {
		if r := (Role{id: uint8(id)}); r.String() != "" {
			return r, nil
		}
	}
	return Role{}, fmt.Errorf("%w: %d", ErrUnknownRole, id)
}

// ParseRole maps a role name (as carried in identity claims) to a Role.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return Role{}, fmt.Errorf("%w: %q", ErrUnknownRole, name)
}

// ID returns the numeric identifier persisted for the role, 0 for no role.
func (r Role) ID() int { return int(r.id) }

// IsZero reports whether no role is set.
func (r Role) IsZero() bool { return r.id == 0 }

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return ""
}
