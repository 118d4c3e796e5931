package user

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	UserID string
	Name   string
	Roles  []string
}

// HasRole reports whether the principal carries the named role.
func (p Principal) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}

	return false
}
