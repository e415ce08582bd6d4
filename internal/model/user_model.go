package model

import (
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
)

type UserModel struct {
	ID              int64
	FirebaseUID     string
	Email           string
	FullName        string
	Phone           string
	ProfileImageURL *string
	Role            string
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (u *UserModel) IsActive() bool {
	return u.Status == constants.UserStatusActive
}

func (u *UserModel) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

func (u *UserModel) IsSeller() bool {
	return u.Role == constants.RoleSeller
}

type CreateUserModel struct {
	FirebaseUID string
	Email       string
	FullName    string
	Phone       string
	Role        string
}
