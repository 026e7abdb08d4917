package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/rest/request"
	"github.com/favsync/favsync/internal/rest/response"
)

// TweetHandler represent the httphandler for manual tweet ingestion
type TweetHandler struct {
	Service domain.TweetUsecase
}

func NewTweetHandler(svc domain.TweetUsecase) *TweetHandler {
	return &TweetHandler{
		Service: svc,
	}
}

// Store ingests a tweet observation by hand, bypassing the stream.
// Re-posting a known tweet returns the stored row.
func (h *TweetHandler) Store(c *gin.Context) {
	var req request.Tweet
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.Service.Observe(c.Request.Context(), req.ToDomain())
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewTweetFromDomain(&t))
}
