package user

import (
	"time"
)

type (
	ID     uint64
	RoleID int
	User   struct {
		ID     ID
		Name   string
		Email  string
		RoleID RoleID

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
