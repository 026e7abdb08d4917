package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/rest/middleware"
)

// LikeHandler represent the httphandler for the bulk-like action
type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// LikeAll likes every pending tweet for the authenticated user. The
// call succeeds once every per-tweet attempt has resolved; individual
// remote failures are only visible in the logs.
func (h *LikeHandler) LikeAll(c *gin.Context) {
	u, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.Service.LikeAllPending(c.Request.Context(), u); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
