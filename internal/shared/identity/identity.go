package identity

// Actor is the authenticated caller resolved once at the HTTP boundary and
// passed into every application service. UnitID is nil when the user has no
// business-unit assignment; customers never use theirs for scoping.
type Actor struct {
	UserID int
	Email  string
	Role   Role
	UnitID *int
}

// Role is one of the three fixed MaxHelp roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleCustomer Role = "customer"
)

// IsValidRole reports whether the value is one of the known roles.
func IsValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleEmployee, RoleCustomer:
		return true
	}
	return false
}

// HasUnit reports whether the actor carries a business-unit assignment.
func (a Actor) HasUnit() bool {
	return a.UnitID != nil
}

// MayAccessUnit decides the unit-scoping rule: admins reach any unit,
// employees only their assigned one, customers none. An employee without an
// assignment can never match a unit, independent of request parameters.
func (a Actor) MayAccessUnit(unitID int) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleEmployee:
		return a.UnitID != nil && *a.UnitID == unitID
	default:
		return false
	}
}
