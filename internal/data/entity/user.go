package entity

type UserRole string

const (
	RoleShopkeeper UserRole = "Shopkeeper"
	RoleAssistant  UserRole = "Assistant"
)

// ValidRole reports whether role is one of the two known roles.
func ValidRole(role string) bool {
	return role == string(RoleShopkeeper) || role == string(RoleAssistant)
}

type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
}
