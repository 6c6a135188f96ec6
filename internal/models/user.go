package models

// RoleAdmin is the role value that grants access to admin-only routes.
const RoleAdmin = "Admin"

// User is a login account. Passwords are stored and compared as opaque
// strings to stay wire-compatible with the existing users table; the
// credential is included in JSON because the user management view edits it.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email    string `gorm:"size:255" json:"email"`
	Password string `gorm:"size:255;not null" json:"password"`
	Role     string `gorm:"size:20;not null;default:'User'" json:"role"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
