package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered account. Students and admins share the same table,
// distinguished only by the IsAdmin flag.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username string `json:"username" gorm:"uniqueIndex;size:100;not null"`
	Password string `json:"-" gorm:"size:255;not null"` // bcrypt hash, never serialized
	IsAdmin  bool   `json:"isAdmin" gorm:"not null;default:false"`
}

// UserView is the response shape for user payloads. Password is omitted by
// construction rather than suppressed at serialization time.
type UserView struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) View() UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
