package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blood-link.backend/pkg/jwt"
	"blood-link.backend/pkg/logger"
	"blood-link.backend/pkg/redis"
)

const (
	// SessionCookieName is the cookie carrying the opaque session ID
	SessionCookieName = "session_id"
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
)

// SessionAuthMiddleware resolves the session cookie into an authenticated
// user. The cookie holds an opaque session ID; the token pair lives
// encrypted in Redis and never reaches the client.
func SessionAuthMiddleware(sessions *redis.SessionStore, jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		data, err := sessions.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "session expired or invalid",
			})
			return
		}

		claims, err := jwtService.ValidateToken(data.AccessToken)
		if err != nil {
			// The Redis TTL outlived the access token; drop the session.
			if delErr := sessions.DeleteSession(c.Request.Context(), sessionID); delErr != nil {
				logger.Warn(c.Request.Context(), "failed to delete stale session")
			}
			ClearSessionCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "session expired or invalid",
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UserEmailKey, claims.Email)

		c.Next()
	}
}

// ClearSessionCookie expires the session cookie on the client
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}
	return userID, true
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
