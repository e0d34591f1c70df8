package entity

type UserRole string

const (
	RoleUser       UserRole = "USER"
	RoleStoreOwner UserRole = "STORE_OWNER"
	RoleAdmin      UserRole = "ADMIN"
)

// NormalizeRole coerces unknown role values to USER. Only ADMIN may be
// assigned directly; STORE_OWNER is reached via store assignment.
func NormalizeRole(role string) UserRole {
	if UserRole(role) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Address      *string  `db:"address"`
	Role         UserRole `db:"role"`
}
