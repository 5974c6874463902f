package models

import "github.com/google/uuid"

// User is a site administrator account. The marketing backend carries the
// table for the admin dashboard but exposes no auth routes itself.
type User struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"column:username;uniqueIndex;not null" json:"username"`
	Password string    `gorm:"column:password;not null" json:"-"`
}

func (User) TableName() string { return "users" }
