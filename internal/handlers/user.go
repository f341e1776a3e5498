package handlers

import (
	"net/http"

	"askmate/internal/data"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	store *data.Store
}

func NewUserHandler(store *data.Store) *UserHandler {
	return &UserHandler{store: store}
}

// List shows every registered user (no password digests leave the store).
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.store.Users()
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Could not load users")
		return
	}
	Render(c, http.StatusOK, "user/list.html", gin.H{
		"Users": users,
		"Title": "Users",
	})
}
