package models

import (
	"time"
)

type User struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"` // Immutable after registration
	HashedPw string    `gorm:"column:hashed_pw;not null" json:"-"`   // bcrypt digest, never the plaintext
	RegDate  time.Time `gorm:"column:reg_date;not null" json:"reg_date"`
}

func (User) TableName() string {
	return "registered_users"
}
