package user

import (
	"time"
)

type (
	User struct {
		ID     uint64
		Name   string
		Email  string
		RoleID int

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
