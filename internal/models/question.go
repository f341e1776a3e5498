package models

import (
	"time"
)

type Question struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SubmissionTime time.Time `gorm:"column:submission_time;index;not null" json:"submission_time"`
	ViewNumber     int       `gorm:"column:view_number;default:0" json:"view_number"`
	VoteNumber     int       `gorm:"column:vote_number;default:0" json:"vote_number"`
	Title          string    `gorm:"not null" json:"title"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	Image          *string   `json:"image"`
	// Nullable on purpose: deleting an account leaves its questions behind,
	// so there is no FK constraint here.
	UserID *uint `gorm:"index" json:"user_id"`
}

func (Question) TableName() string {
	return "question"
}
