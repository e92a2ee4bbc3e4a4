// user.go - Defines the User model for the database

package models // Declares the package name

// RoleAdmin is the only role value that grants admin access.
// Any other value (including an empty one) is treated as a standard user.
const RoleAdmin = "Admin"

type User struct { // User struct represents a user in the database
	ID    uint   `gorm:"primaryKey" json:"id"`              // Unique user ID (primary key)
	Email string `gorm:"unique;not null" json:"email"`      // User's email (stable identity key, must be unique)
	Name  string `json:"name"`                              // Display name (optional)
	Role  string `json:"role,omitempty"`                    // Role ("Admin" or empty/other = standard)
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
