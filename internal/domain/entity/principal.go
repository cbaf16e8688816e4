package entity

// PrincipalRole is the platform role carried in the caller's token
type PrincipalRole string

// Principal roles. An empty role is a customer.
const (
	PrincipalCustomer PrincipalRole = "customer"
	PrincipalOperator PrincipalRole = "operator"
)

// Principal is the authenticated caller of an operation
type Principal struct {
	UserID uint64
	Email  string
	Role   PrincipalRole
}

// IsZero reports whether no user is authenticated
func (p Principal) IsZero() bool {
	return p.UserID == 0
}

// IsOperator reports whether the caller may run back-office operations:
// wallet credits and order fulfilment
func (p Principal) IsOperator() bool {
	return p.Role == PrincipalOperator
}

// ParsePrincipalRole maps a token claim to a role. Unknown values fall back
// to customer so a forged or stale claim never widens access.
func ParsePrincipalRole(raw string) PrincipalRole {
	if PrincipalRole(raw) == PrincipalOperator {
		return PrincipalOperator
	}
	return PrincipalCustomer
}
