// Package entity contains the core business objects of the project.
package entity

// Role represents the capability level of an account.
type Role string

const (
	// RoleCustomer indicates a regular shopper account.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates a back-office administrator account.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}
