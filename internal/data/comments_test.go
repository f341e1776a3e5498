package data

import (
	"testing"
)

func TestQuestionCommentsExcludeAnswerComments(t *testing.T) {
	s := setupTestStore(t)

	q := mustInsertQuestion(t, s, "q", "m")
	a := mustInsertAnswer(t, s, q.ID, "an answer")

	if _, err := s.InsertQuestionComment(NewQuestionComment{QuestionID: q.ID, Message: "direct"}); err != nil {
		t.Fatalf("InsertQuestionComment failed: %v", err)
	}
	if _, err := s.InsertAnswerComment(NewAnswerComment{AnswerID: a.ID, Message: "nested"}); err != nil {
		t.Fatalf("InsertAnswerComment failed: %v", err)
	}

	direct, err := s.CommentsByQuestionID(q.ID)
	if err != nil {
		t.Fatalf("CommentsByQuestionID failed: %v", err)
	}
	if len(direct) != 1 || direct[0].Message != "direct" {
		t.Fatalf("Expected only the question's own comment, got %d", len(direct))
	}
	if direct[0].AnswerID != nil {
		t.Error("A direct question comment must carry a NULL answer_id")
	}

	nested, err := s.CommentsByAnswerID(a.ID)
	if err != nil {
		t.Fatalf("CommentsByAnswerID failed: %v", err)
	}
	if len(nested) != 1 || nested[0].Message != "nested" {
		t.Fatalf("Expected only the answer's comment, got %d", len(nested))
	}
	if nested[0].QuestionID != q.ID {
		t.Errorf("Answer comment lost its parent question: %d", nested[0].QuestionID)
	}
}

func TestCommentJoinsUsername(t *testing.T) {
	s := setupTestStore(t)

	user, err := s.RegisterUser("grace", "pw1234")
	if err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}
	q := mustInsertQuestion(t, s, "q", "m")
	if _, err := s.InsertQuestionComment(NewQuestionComment{
		QuestionID: q.ID,
		Message:    "signed comment",
		UserID:     &user.ID,
	}); err != nil {
		t.Fatalf("InsertQuestionComment failed: %v", err)
	}

	comments, err := s.CommentsByQuestionID(q.ID)
	if err != nil {
		t.Fatalf("CommentsByQuestionID failed: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("Expected 1 comment, got %d", len(comments))
	}
	if comments[0].Username == nil || *comments[0].Username != "grace" {
		t.Errorf("Expected joined username grace, got %v", comments[0].Username)
	}
}

func TestUpdateCommentBumpsEditedCount(t *testing.T) {
	s := setupTestStore(t)

	q := mustInsertQuestion(t, s, "q", "m")
	c, err := s.InsertQuestionComment(NewQuestionComment{QuestionID: q.ID, Message: "v1"})
	if err != nil {
		t.Fatalf("InsertQuestionComment failed: %v", err)
	}
	if c.EditedCount != 0 {
		t.Fatalf("A fresh comment starts at edited_count 0, got %d", c.EditedCount)
	}

	if err := s.UpdateComment(c.ID, "v2"); err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}
	if err := s.UpdateComment(c.ID, "v3"); err != nil {
		t.Fatalf("UpdateComment failed: %v", err)
	}

	row, err := s.CommentByID(c.ID)
	if err != nil || row == nil {
		t.Fatalf("CommentByID failed: %v", err)
	}
	if row.Message != "v3" {
		t.Errorf("Expected message v3, got %q", row.Message)
	}
	if row.EditedCount != 2 {
		t.Errorf("Two edits must mean edited_count 2, got %d", row.EditedCount)
	}
	if !row.SubmissionTime.Equal(c.SubmissionTime) {
		t.Error("Edit must not rewrite the submission time")
	}
}

func TestInsertAnswerCommentRequiresLiveAnswer(t *testing.T) {
	s := setupTestStore(t)

	if _, err := s.InsertAnswerComment(NewAnswerComment{AnswerID: 777, Message: "orphan"}); !IsValidation(err) {
		t.Errorf("Expected validation error for missing answer, got %v", err)
	}
}

func TestInsertCommentValidation(t *testing.T) {
	s := setupTestStore(t)

	q := mustInsertQuestion(t, s, "q", "m")
	if _, err := s.InsertQuestionComment(NewQuestionComment{QuestionID: q.ID, Message: " "}); !IsValidation(err) {
		t.Errorf("Expected validation error for blank message, got %v", err)
	}
}
