package middleware

import (
	"net/http"

	"askmate/internal/data"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadUser retrieves the session user from the store and sets it on the
// request context.
func LoadUser(store *data.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID, ok := session.Get("user_id").(uint); ok {
			user, err := store.UserByID(userID)
			if err == nil && user != nil {
				c.Set(CheckUserKey, user)
			}
		}
		c.Next()
	}
}
