package data

import (
	"errors"
	"time"

	"askmate/internal/models"

	"gorm.io/gorm"
)

// CommentView is a comment joined with the author's display username.
type CommentView struct {
	models.Comment
	Username *string `json:"username"`
}

// NewQuestionComment attaches a comment directly to a question.
type NewQuestionComment struct {
	QuestionID uint
	Message    string
	UserID     *uint
}

func (s *Store) InsertQuestionComment(c NewQuestionComment) (*models.Comment, error) {
	if err := required("message", c.Message); err != nil {
		return nil, err
	}
	if ok, err := s.questionExists(c.QuestionID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &ValidationError{Field: "question_id"}
	}

	row := models.Comment{
		QuestionID:     c.QuestionID,
		Message:        c.Message,
		SubmissionTime: time.Now(),
		UserID:         c.UserID,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, classify(err)
	}
	return &row, nil
}

// NewAnswerComment attaches a comment to an answer. The parent question id
// is derived from the answer row so the pair can never disagree.
type NewAnswerComment struct {
	AnswerID uint
	Message  string
	UserID   *uint
}

func (s *Store) InsertAnswerComment(c NewAnswerComment) (*models.Comment, error) {
	if err := required("message", c.Message); err != nil {
		return nil, err
	}
	questionID, err := s.QuestionIDByAnswerID(c.AnswerID)
	if err != nil {
		return nil, err
	}
	if questionID == 0 {
		return nil, &ValidationError{Field: "answer_id"}
	}

	answerID := c.AnswerID
	row := models.Comment{
		QuestionID:     questionID,
		AnswerID:       &answerID,
		Message:        c.Message,
		SubmissionTime: time.Now(),
		UserID:         c.UserID,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, classify(err)
	}
	return &row, nil
}

// CommentsByQuestionID lists a question's direct comments (answer comments
// excluded) oldest-first with usernames joined.
func (s *Store) CommentsByQuestionID(questionID uint) ([]CommentView, error) {
	var rows []CommentView
	err := s.db.Table("comment").
		Select("comment.*, r.username").
		Joins("LEFT JOIN registered_users r ON comment.user_id = r.id").
		Where("comment.question_id = ? AND comment.answer_id IS NULL", questionID).
		Order("comment.submission_time").
		Scan(&rows).Error
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// CommentsByAnswerID lists the comments under one answer, oldest-first.
func (s *Store) CommentsByAnswerID(answerID uint) ([]CommentView, error) {
	var rows []CommentView
	err := s.db.Table("comment").
		Select("comment.*, r.username").
		Joins("LEFT JOIN registered_users r ON comment.user_id = r.id").
		Where("comment.answer_id = ?", answerID).
		Order("comment.submission_time").
		Scan(&rows).Error
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

func (s *Store) CommentByID(id uint) (*models.Comment, error) {
	var row models.Comment
	err := s.db.First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &row, nil
}

// UpdateComment rewrites the message and bumps edited_count by one in the
// same statement, so concurrent edits each count exactly once.
func (s *Store) UpdateComment(id uint, message string) error {
	if err := required("message", message); err != nil {
		return err
	}
	err := s.db.Model(&models.Comment{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"message":      message,
			"edited_count": gorm.Expr("edited_count + 1"),
		}).Error
	return classify(err)
}
