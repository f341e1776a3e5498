package data

import (
	"errors"
	"strings"
	"time"

	"askmate/internal/models"

	"gorm.io/gorm"
)

// Store is the forum's data layer: typed operations over the question,
// answer, comment and registered_users tables. Every instance works through
// the single gorm handle it was constructed with; there is no package-level
// connection state.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Identifier allow-lists. Sort keys and vote targets come in from the route
// layer as strings, so only these ever reach a SQL statement.
var sortableColumns = map[string]bool{
	"submission_time": true,
	"view_number":     true,
	"vote_number":     true,
	"title":           true,
}

var voteTables = map[string]bool{
	"question": true,
	"answer":   true,
}

const (
	VoteUp   = "up"
	VoteDown = "down"
)

func orderClause(key, order string) (string, error) {
	if key == "" {
		key = "submission_time"
	}
	if !sortableColumns[key] {
		return "", &ValidationError{Field: "order_by"}
	}
	switch strings.ToLower(order) {
	case "", "desc":
		return key + " DESC", nil
	case "asc":
		return key + " ASC", nil
	}
	return "", &ValidationError{Field: "order_direction"}
}

// NewQuestion carries the caller-supplied fields of an insert; the store
// assigns id and submission time itself.
type NewQuestion struct {
	Title   string
	Message string
	Image   *string
	UserID  *uint
}

func (s *Store) InsertQuestion(q NewQuestion) (*models.Question, error) {
	if err := required("title", q.Title); err != nil {
		return nil, err
	}
	if err := required("message", q.Message); err != nil {
		return nil, err
	}

	row := models.Question{
		SubmissionTime: time.Now(),
		Title:          q.Title,
		Message:        q.Message,
		Image:          q.Image,
		UserID:         q.UserID,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, classify(err)
	}
	return &row, nil
}

type NewAnswer struct {
	QuestionID uint
	Message    string
	Image      *string
	UserID     *uint
}

func (s *Store) InsertAnswer(a NewAnswer) (*models.Answer, error) {
	if err := required("message", a.Message); err != nil {
		return nil, err
	}
	if ok, err := s.questionExists(a.QuestionID); err != nil {
		return nil, err
	} else if !ok {
		return nil, &ValidationError{Field: "question_id"}
	}

	row := models.Answer{
		SubmissionTime: time.Now(),
		QuestionID:     a.QuestionID,
		Message:        a.Message,
		Image:          a.Image,
		UserID:         a.UserID,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, classify(err)
	}
	return &row, nil
}

func (s *Store) questionExists(id uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Question{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, classify(err)
	}
	return count > 0, nil
}

// Questions returns questions newest-first. A positive limit caps the result
// to the N most recent; limit <= 0 returns everything.
func (s *Store) Questions(limit int) ([]models.Question, error) {
	q := s.db.Order("submission_time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []models.Question
	if err := q.Find(&rows).Error; err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// QuestionsSorted returns every question ordered by an allow-listed column.
func (s *Store) QuestionsSorted(key, order string) ([]models.Question, error) {
	clause, err := orderClause(key, order)
	if err != nil {
		return nil, err
	}
	var rows []models.Question
	if err := s.db.Order(clause).Find(&rows).Error; err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// QuestionView is a question joined with its owner's display username.
// Username is nil when the owner account no longer exists.
type QuestionView struct {
	models.Question
	Username *string `json:"username"`
}

// QuestionByID fetches one question with the owning username attached.
// A missing id is an empty result (nil, nil), not an error.
func (s *Store) QuestionByID(id uint) (*QuestionView, error) {
	var rows []QuestionView
	err := s.db.Table("question").
		Select("question.*, r.username").
		Joins("LEFT JOIN registered_users r ON question.user_id = r.id").
		Where("question.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, classify(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

type AnswerView struct {
	models.Answer
	Username *string `json:"username"`
}

func (s *Store) AnswerByID(id uint) (*AnswerView, error) {
	var rows []AnswerView
	err := s.db.Table("answer").
		Select("answer.*, r.username").
		Joins("LEFT JOIN registered_users r ON answer.user_id = r.id").
		Where("answer.id = ?", id).
		Scan(&rows).Error
	if err != nil {
		return nil, classify(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// AnswersByQuestionID lists a question's answers oldest-first, each with the
// owner's username joined in.
func (s *Store) AnswersByQuestionID(questionID uint) ([]AnswerView, error) {
	var rows []AnswerView
	err := s.db.Table("answer").
		Select("answer.*, r.username").
		Joins("LEFT JOIN registered_users r ON answer.user_id = r.id").
		Where("answer.question_id = ?", questionID).
		Order("answer.submission_time").
		Scan(&rows).Error
	if err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

// QuestionUpdate rewrites the editable fields of a question. Ids, counters
// and timestamps are never touched by an update.
type QuestionUpdate struct {
	Title   string
	Message string
	Image   *string
}

func (s *Store) UpdateQuestion(id uint, upd QuestionUpdate) error {
	if err := required("title", upd.Title); err != nil {
		return err
	}
	if err := required("message", upd.Message); err != nil {
		return err
	}
	err := s.db.Model(&models.Question{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"title":   upd.Title,
			"message": upd.Message,
			"image":   upd.Image,
		}).Error
	return classify(err)
}

type AnswerUpdate struct {
	Message string
	Image   *string
}

func (s *Store) UpdateAnswer(id uint, upd AnswerUpdate) error {
	if err := required("message", upd.Message); err != nil {
		return err
	}
	err := s.db.Model(&models.Answer{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"message": upd.Message,
			"image":   upd.Image,
		}).Error
	return classify(err)
}

// IncrementView bumps a question's view counter as a single relative update
// so concurrent visitors never lose an increment.
func (s *Store) IncrementView(questionID uint, delta int) error {
	if delta < 0 {
		return &ValidationError{Field: "delta"}
	}
	err := s.db.Model(&models.Question{}).Where("id = ?", questionID).
		UpdateColumn("view_number", gorm.Expr("view_number + ?", delta)).Error
	return classify(err)
}

// Vote applies one up or down vote to a question or answer. The counter is
// updated in place (vote_number = vote_number + delta) so interleaved voters
// all land.
func (s *Store) Vote(table string, id uint, direction string) error {
	if !voteTables[table] {
		return &ValidationError{Field: "table"}
	}
	var delta int
	switch direction {
	case VoteUp:
		delta = 1
	case VoteDown:
		delta = -1
	default:
		return &ValidationError{Field: "direction"}
	}
	err := s.db.Table(table).Where("id = ?", id).
		UpdateColumn("vote_number", gorm.Expr("vote_number + ?", delta)).Error
	return classify(err)
}

// QuestionIDByAnswerID resolves an answer's parent question. 0 means the
// answer does not exist.
func (s *Store) QuestionIDByAnswerID(answerID uint) (uint, error) {
	var answer models.Answer
	err := s.db.Select("question_id").First(&answer, answerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, classify(err)
	}
	return answer.QuestionID, nil
}

func (s *Store) QuestionIDByCommentID(commentID uint) (uint, error) {
	var comment models.Comment
	err := s.db.Select("question_id").First(&comment, commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, classify(err)
	}
	return comment.QuestionID, nil
}
