package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/favsync/favsync/domain/mocks"
	"github.com/favsync/favsync/internal/rest"
	"github.com/favsync/favsync/internal/rest/middleware"
)

func TestLikeAll(t *testing.T) {
	u := testUser()
	likes := new(mocks.LikeUsecase)
	likes.On("LikeAllPending", mock.Anything, u).Return(nil)

	r := gin.New()
	r.POST("/like", asUser(u), middleware.RequireUser(), rest.NewLikeHandler(likes).LikeAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/like", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	likes.AssertExpectations(t)
}

func TestLikeAllUnauthenticated(t *testing.T) {
	likes := new(mocks.LikeUsecase)

	r := gin.New()
	r.POST("/like", middleware.RequireUser(), rest.NewLikeHandler(likes).LikeAll)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/like", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	likes.AssertNotCalled(t, "LikeAllPending", mock.Anything, mock.Anything)
}
