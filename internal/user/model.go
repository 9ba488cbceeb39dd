package user

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uint
	Email     string
	Password  string
	Role      Role
	FirstName *string
	LastName  *string
	CreatedAt time.Time
}

type UpdateProfileParams struct {
	UserID    uint
	FirstName *string
	LastName  *string
}
