package handlers

import (
	"strings"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// RequireSession resolves the bearer token to a live session and stores it on
// the gin context. Requests without one stop here with 401.
func RequireSession(uc usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		sess, err := uc.Authenticate(c.Request.Context(), token)
		if err != nil {
			appErr := mapSessionError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return entities.Session{}, false
	}
	sess, ok := v.(entities.Session)
	return sess, ok
}
