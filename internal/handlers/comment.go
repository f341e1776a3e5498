package handlers

import (
	"net/http"

	"askmate/internal/data"
	"askmate/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	store *data.Store
}

func NewCommentHandler(store *data.Store) *CommentHandler {
	return &CommentHandler{store: store}
}

// CreateOnQuestion posts a comment directly under a question.
func (h *CommentHandler) CreateOnQuestion(c *gin.Context) {
	questionID := utils.StringToUint(c.Param("id"))

	_, err := h.store.InsertQuestionComment(data.NewQuestionComment{
		QuestionID: questionID,
		Message:    c.PostForm("message"),
		UserID:     currentUserID(c),
	})
	if err != nil {
		if data.IsValidation(err) {
			RenderError(c, http.StatusBadRequest, "A comment needs a message and an existing question")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save comment")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+c.Param("id"))
}

// CreateOnAnswer posts a comment under an answer.
func (h *CommentHandler) CreateOnAnswer(c *gin.Context) {
	answerID := utils.StringToUint(c.Param("id"))

	comment, err := h.store.InsertAnswerComment(data.NewAnswerComment{
		AnswerID: answerID,
		Message:  c.PostForm("message"),
		UserID:   currentUserID(c),
	})
	if err != nil {
		if data.IsValidation(err) {
			RenderError(c, http.StatusBadRequest, "A comment needs a message and an existing answer")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save comment")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+utils.UintToString(comment.QuestionID))
}

func (h *CommentHandler) ShowEdit(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	comment, err := h.store.CommentByID(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load comment")
		return
	}
	if comment == nil {
		RenderError(c, http.StatusNotFound, "No such comment")
		return
	}
	Render(c, http.StatusOK, "comment/form.html", gin.H{
		"Title":   "Edit comment",
		"Action":  "/comment/" + c.Param("id") + "/edit",
		"Message": comment.Message,
	})
}

// Update rewrites the message; the store bumps edited_count by one.
func (h *CommentHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	if err := h.store.UpdateComment(id, c.PostForm("message")); err != nil {
		if data.IsValidation(err) {
			RenderError(c, http.StatusBadRequest, "A comment needs a message")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save comment")
		return
	}

	questionID, err := h.store.QuestionIDByCommentID(id)
	if err != nil || questionID == 0 {
		c.Redirect(http.StatusFound, "/list")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+utils.UintToString(questionID))
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	// Resolve the parent before the row disappears
	questionID, err := h.store.QuestionIDByCommentID(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete comment")
		return
	}

	if err := h.store.DeleteComment(id); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete comment")
		return
	}

	if questionID == 0 {
		c.Redirect(http.StatusFound, "/list")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+utils.UintToString(questionID))
}
