package twitter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/twitter"
)

func testUser() domain.User {
	return domain.User{
		ID:          7,
		TwitterID:   "1000",
		AccessToken: "user-token",
		TokenSecret: "user-secret",
	}
}

func newFactory(baseURL string) *twitter.Client {
	return twitter.NewClient(twitter.Config{
		ConsumerKey:    "consumer-key",
		ConsumerSecret: "consumer-secret",
		BaseURL:        baseURL,
	})
}

func TestCreateFavorite(t *testing.T) {
	var gotPath, gotAuth, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, r.ParseForm())
		gotBody = r.PostForm.Get("id")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := newFactory(srv.URL).ClientFor(testUser())
	err := client.CreateFavorite(context.Background(), "42")
	require.NoError(t, err)

	assert.Equal(t, "/favorites/create.json", gotPath)
	assert.Equal(t, "42", gotBody)
	assert.True(t, strings.HasPrefix(gotAuth, "OAuth "), "request must be OAuth1-signed")
	assert.Contains(t, gotAuth, `oauth_token="user-token"`)
}

func TestCreateFavoriteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"errors":[{"code":88}]}`))
	}))
	defer srv.Close()

	client := newFactory(srv.URL).ClientFor(testUser())
	err := client.CreateFavorite(context.Background(), "42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestVerifyCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/account/verify_credentials.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id_str":"1000","name":"Some One","screen_name":"someone"}`))
	}))
	defer srv.Close()

	creds := domain.Credentials{AccessToken: "user-token", TokenSecret: "user-secret"}
	profile, err := newFactory(srv.URL).VerifyCredentials(context.Background(), creds)
	require.NoError(t, err)

	assert.Equal(t, "1000", profile.TwitterID)
	assert.Equal(t, "Some One", profile.Name)
	assert.Equal(t, creds.AccessToken, profile.AccessToken)
	assert.Equal(t, creds.TokenSecret, profile.TokenSecret)
}

func TestVerifyCredentialsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newFactory(srv.URL).VerifyCredentials(context.Background(), domain.Credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
