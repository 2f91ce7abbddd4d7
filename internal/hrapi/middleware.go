package hrapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aerohr/console/pkg/constants"
	"github.com/aerohr/console/pkg/utils"
)

// RequireAuth is a middleware that validates JWT tokens
func RequireAuth(authn *Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			unauthorized(c, "No authorization token provided")
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := authn.ValidateToken(parts[1])
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		c.Set(constants.ContextKeyUser, claims.User)
		c.Set(constants.ContextKeyToken, parts[1])
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		constants.ResponseError: "Unauthorized",
		constants.FieldMessage:  message,
		constants.FieldCode:     "UNAUTHORIZED",
		constants.ResponseData:  nil,
	})
	c.Abort()
}

// RequestID echoes the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HeaderXRequestID)
		if id == "" {
			id = utils.GenerateID()
		}
		c.Set(constants.ContextKeyRequestID, id)
		c.Header(constants.HeaderXRequestID, id)
		c.Next()
	}
}

// GetUserFromContext extracts the authenticated user from gin.Context
func GetUserFromContext(c *gin.Context) *UserSession {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := v.(UserSession)
	if !ok {
		return nil
	}
	return &user
}
