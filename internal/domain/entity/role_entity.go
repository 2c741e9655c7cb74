package entity

// Role represents an authorization role. Stored as text on the user row.
// USER is assigned on self-registration; ADMIN only via the bootstrap path.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}
