package handlers

import (
	"errors"
	"net/http"

	"askmate/internal/data"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	store *data.Store
}

func NewAuthHandler(store *data.Store) *AuthHandler {
	return &AuthHandler{store: store}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", nil)
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if len(password) < 6 {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Error":    "Password must be at least 6 characters",
			"Username": username,
		})
		return
	}

	user, err := h.store.RegisterUser(username, password)
	if err != nil {
		msg := "Registration failed"
		switch {
		case errors.Is(err, data.ErrDuplicateUser):
			msg = "That username is already taken"
		case data.IsValidation(err):
			msg = "Username and password are both required"
		}
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Error":    msg,
			"Username": username,
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	ok, err := h.store.VerifyUser(username, password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}
	if !ok {
		// One message for both unknown user and bad password
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Error":    "Wrong username or password",
			"Username": username,
		})
		return
	}

	userID, err := h.store.UserIDByUsername(username)
	if err != nil || userID == 0 {
		RenderError(c, http.StatusInternalServerError, "Something went wrong, please try again")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", userID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}
