package api

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vitatrack/backend/internal/apperror"
)

// respondError is the single boundary where kind-tagged errors become
// HTTP responses. Clients get the safe message; causes go to the log.
func respondError(c *gin.Context, err error) {
	if apperror.KindOf(err) == apperror.KindInternal || apperror.KindOf(err) == apperror.KindUpstream {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(apperror.Status(err), gin.H{"error": apperror.MessageOf(err)})
}

// currentUserID reads the authenticated user id placed in the context
// by the auth middleware.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		respondError(c, apperror.Auth("user not authenticated"))
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		respondError(c, apperror.Auth("user not authenticated"))
		return uuid.Nil, false
	}
	return id, true
}
