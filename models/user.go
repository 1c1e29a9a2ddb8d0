package models

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID        string   `gorm:"primaryKey" json:"id"`
	Email     string   `gorm:"unique;not null" json:"email"`
	Password  string   `gorm:"not null" json:"-"`
	Name      string   `json:"name"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Phone     string   `json:"phone"`
	Country   string   `json:"country"`
	City      string   `json:"city"`
	Role      UserRole `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user has been explicitly granted the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
