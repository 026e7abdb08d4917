package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/favsync/favsync/domain"
)

const (
	// SessionCookie is the cookie the session id travels in.
	SessionCookie = "sid"

	// UserKey is the gin context key the resolved user is stored under.
	UserKey = "user"
)

// LoadUser resolves the session cookie to a user, if any, and stores it
// on the context. Requests without a valid session pass through
// unauthenticated.
func LoadUser(sessions domain.SessionStore, users domain.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID, err := sessions.Get(ctx, sid)
		if err != nil {
			c.Next()
			return
		}

		u, err := users.GetByID(ctx, userID)
		if err != nil {
			// account destroyed while the session was still live
			_ = sessions.Delete(ctx, sid)
			c.Next()
			return
		}

		c.Set(UserKey, u)
		c.Next()
	}
}

// RequireUser aborts with 401 unless LoadUser resolved a user earlier
// in the chain.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(UserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			return
		}
		c.Next()
	}
}

// UserFromContext returns the user LoadUser stored, if any.
func UserFromContext(c *gin.Context) (domain.User, bool) {
	val, exists := c.Get(UserKey)
	if !exists {
		return domain.User{}, false
	}
	u, ok := val.(domain.User)
	return u, ok
}
