package handlers

import (
	"net/http"

	"askmate/internal/data"
	"askmate/internal/utils"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	store *data.Store
}

func NewVoteHandler(store *data.Store) *VoteHandler {
	return &VoteHandler{store: store}
}

// Vote applies an up or down vote to a question or answer and returns to the
// owning question page. Target table and direction come from the route and
// are allow-listed by the store.
func (h *VoteHandler) Vote(c *gin.Context) {
	table := c.Param("table")
	id := utils.StringToUint(c.Param("id"))
	direction := c.Param("direction")

	if err := h.store.Vote(table, id, direction); err != nil {
		if data.IsValidation(err) {
			RenderError(c, http.StatusBadRequest, "Unknown vote target")
			return
		}
		RenderError(c, http.StatusInternalServerError, "Could not register vote")
		return
	}

	if table == "question" {
		c.Redirect(http.StatusFound, "/question/"+c.Param("id"))
		return
	}

	questionID, err := h.store.QuestionIDByAnswerID(id)
	if err != nil || questionID == 0 {
		c.Redirect(http.StatusFound, "/list")
		return
	}
	c.Redirect(http.StatusFound, "/question/"+utils.UintToString(questionID))
}
