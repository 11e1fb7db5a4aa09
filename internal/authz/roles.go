// Package authz defines the closed set of membership roles and the
// capability table that maps each role to the actions it may perform.
// Role is the sole authorization signal the backend exposes; everything
// the client gates on is derived from this table.
package authz

// Role identifies a membership tier.
type Role string

const (
	RoleAdmin          Role = "admin"
	RoleExecutive      Role = "executive"
	RolePaidMember     Role = "paid_member"
	RoleProductCompany Role = "product_company"
	RoleUniversity     Role = "university"
	RoleFreeMember     Role = "free_member"
)

// AllRoles lists every defined role, in display order.
func AllRoles() []Role {
	return []Role{
		RoleAdmin,
		RoleExecutive,
		RolePaidMember,
		RoleProductCompany,
		RoleUniversity,
		RoleFreeMember,
	}
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleExecutive, RolePaidMember, RoleProductCompany, RoleUniversity, RoleFreeMember:
		return true
	}
	return false
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable label for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleExecutive:
		return "Executive"
	case RolePaidMember:
		return "Paid Member"
	case RoleProductCompany:
		return "Product Company"
	case RoleUniversity:
		return "University"
	case RoleFreeMember:
		return "Free Member"
	default:
		return string(r)
	}
}
