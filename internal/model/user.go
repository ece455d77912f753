package model

// UserStatus represents the account status reported by the backend
type UserStatus string

const (
	// UserStatusActive means the account is in good standing
	UserStatusActive UserStatus = "ACTIVE"

	// UserStatusLocked means the account is temporarily locked
	UserStatusLocked UserStatus = "LOCKED"

	// UserStatusDisabled means the account has been disabled by an admin
	UserStatusDisabled UserStatus = "DISABLED"

	// UserStatusExpired means the account credentials have expired
	UserStatusExpired UserStatus = "EXPIRED"
)

// String returns the string representation of UserStatus
func (us UserStatus) String() string {
	return string(us)
}

// Role strings recognized by the admin guard
const (
	RoleAdmin      = "ROLE_ADMIN"
	RoleSuperAdmin = "ROLE_SUPER_ADMIN"
)

// AdminRoles is the fixed set of roles granted back-office access
var AdminRoles = []string{RoleSuperAdmin, RoleAdmin}

// User represents the signed-in account mirrored from the backend
type User struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone"`
	Address  string     `json:"address"`
	Roles    []string   `json:"roles"`
	Status   UserStatus `json:"userStatus"`
}

// IsAdmin reports whether the user's role set intersects the admin role set
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	return HasAnyRole(u.Roles, AdminRoles)
}

// HasAnyRole reports whether roles contains at least one of allowed
func HasAnyRole(roles, allowed []string) bool {
	for _, r := range roles {
		for _, a := range allowed {
			if r == a {
				return true
			}
		}
	}
	return false
}
