package models

import (
	"time"
)

type Answer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	SubmissionTime time.Time `gorm:"column:submission_time;index;not null" json:"submission_time"`
	VoteNumber     int       `gorm:"column:vote_number;default:0" json:"vote_number"`
	// Must reference a live question; the data layer keeps this true on
	// delete instead of relying on an FK cascade.
	QuestionID uint    `gorm:"not null;index" json:"question_id"`
	Message    string  `gorm:"type:text;not null" json:"message"`
	Image      *string `json:"image"`
	UserID     *uint   `gorm:"index" json:"user_id"`
}

func (Answer) TableName() string {
	return "answer"
}
