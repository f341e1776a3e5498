package handlers

import (
	"net/http"

	"askmate/internal/data"
	"askmate/internal/utils"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	store *data.Store
}

func NewAnswerHandler(store *data.Store) *AnswerHandler {
	return &AnswerHandler{store: store}
}

// Create posts a new answer under a question.
func (h *AnswerHandler) Create(c *gin.Context) {
	questionID := utils.StringToUint(c.Param("id"))

	_, err := h.store.InsertAnswer(data.NewAnswer{
		QuestionID: questionID,
		Message:    c.PostForm("message"),
		Image:      optionalImage(c),
		UserID:     currentUserID(c),
	})
	if err != nil {
		if data.IsValidation(err) {
			RenderError(c, http.StatusBadRequest, "An answer needs a message and an existing question")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save answer")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+c.Param("id"))
}

func (h *AnswerHandler) ShowEdit(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))
	answer, err := h.store.AnswerByID(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load answer")
		return
	}
	if answer == nil {
		RenderError(c, http.StatusNotFound, "No such answer")
		return
	}
	Render(c, http.StatusOK, "answer/form.html", gin.H{
		"Title":   "Edit answer",
		"Action":  "/answer/" + c.Param("id") + "/edit",
		"Message": answer.Message,
	})
}

func (h *AnswerHandler) Update(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	err := h.store.UpdateAnswer(id, data.AnswerUpdate{
		Message: c.PostForm("message"),
		Image:   optionalImage(c),
	})
	if err != nil {
		if data.IsValidation(err) {
			RenderError(c, http.StatusBadRequest, "An answer needs a message")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not save answer")
		return
	}

	questionID, err := h.store.QuestionIDByAnswerID(id)
	if err != nil || questionID == 0 {
		c.Redirect(http.StatusFound, "/list")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+utils.UintToString(questionID))
}

// Delete removes the answer and its comments, then returns to the question.
func (h *AnswerHandler) Delete(c *gin.Context) {
	id := utils.StringToUint(c.Param("id"))

	// Resolve the parent before the row disappears
	questionID, err := h.store.QuestionIDByAnswerID(id)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete answer")
		return
	}

	if err := h.store.DeleteAnswer(id); err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not delete answer")
		return
	}

	if questionID == 0 {
		c.Redirect(http.StatusFound, "/list")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+utils.UintToString(questionID))
}
