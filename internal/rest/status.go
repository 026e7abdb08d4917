package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/rest/middleware"
	"github.com/favsync/favsync/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// StatusHandler serves the home payload: global like counters and, for
// an authenticated user, their own counter and pending tweets.
type StatusHandler struct {
	Likes domain.LikeUsecase
	Users domain.UserUsecase
}

func NewStatusHandler(likes domain.LikeUsecase, users domain.UserUsecase) *StatusHandler {
	return &StatusHandler{
		Likes: likes,
		Users: users,
	}
}

// Status will render the current like/pending state
func (h *StatusHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	totalLiked, err := h.Likes.CountTotal(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	clients, err := h.Users.Count(ctx)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := response.Status{
		TotalLikedTweets: totalLiked,
		TwitterClients:   clients,
	}

	if u, ok := middleware.UserFromContext(c); ok {
		liked, err := h.Likes.CountForUser(ctx, u)
		if err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}

		pending, err := h.Likes.PendingForUser(ctx, u)
		if err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}

		pendingRes := make([]response.Tweet, len(pending))
		for i := range pending {
			pendingRes[i] = response.NewTweetFromDomain(&pending[i])
		}

		res.User = response.NewStatusUserFromDomain(&u)
		res.LikedTweets = &liked
		res.PendingTweets = pendingRes
	}

	c.JSON(http.StatusOK, res)
}

// getStatusCode will get the code of the error from the usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch err {
	case domain.ErrInternalServerError:
		return http.StatusInternalServerError
	case domain.ErrNotFound:
		return http.StatusNotFound
	case domain.ErrConflict:
		return http.StatusConflict
	case domain.ErrBadParamInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
