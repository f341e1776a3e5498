package models

import (
	"time"
)

type Comment struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	QuestionID uint `gorm:"not null;index" json:"question_id"`
	// NULL for comments placed directly on a question. When set, QuestionID
	// still carries the answer's parent question so both lookups stay cheap.
	AnswerID       *uint     `gorm:"index" json:"answer_id"`
	Message        string    `gorm:"type:text;not null" json:"message"`
	SubmissionTime time.Time `gorm:"column:submission_time;index;not null" json:"submission_time"`
	EditedCount    int       `gorm:"column:edited_count;default:0" json:"edited_count"`
	UserID         *uint     `gorm:"index" json:"user_id"`
}

func (Comment) TableName() string {
	return "comment"
}
