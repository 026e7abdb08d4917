package twitter_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/twitter"
)

func newStream(baseURL string, track ...string) *twitter.Stream {
	return twitter.NewStream(twitter.StreamConfig{
		ConsumerKey:    "consumer-key",
		ConsumerSecret: "consumer-secret",
		AccessToken:    "app-token",
		AccessSecret:   "app-secret",
		BaseURL:        baseURL,
		Track:          track,
	})
}

func collect(t *testing.T, ch <-chan domain.TweetObservation, n int) []domain.TweetObservation {
	t.Helper()
	var got []domain.TweetObservation
	timeout := time.After(5 * time.Second)
	for len(got) < n {
		select {
		case obs, ok := <-ch:
			if !ok {
				return got
			}
			got = append(got, obs)
		case <-timeout:
			t.Fatalf("timed out waiting for %d observations, got %d", n, len(got))
		}
	}
	return got
}

func TestStreamDeliversObservations(t *testing.T) {
	var gotTrack string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/statuses/filter.json", r.URL.Path)
		require.NoError(t, r.ParseForm())
		gotTrack = r.PostForm.Get("track")

		// two tweets, a keep-alive newline and a non-tweet notice
		_, _ = w.Write([]byte(`{"id_str":"1","text":"first","user":{"screen_name":"alice"}}` + "\r\n"))
		_, _ = w.Write([]byte("\r\n"))
		_, _ = w.Write([]byte(`{"limit":{"track":5}}` + "\r\n"))
		_, _ = w.Write([]byte(`{"id_str":"2","text":"second","user":{"screen_name":"bob"}}` + "\r\n"))
	}))
	defer srv.Close()

	ch, err := newStream(srv.URL, "#topic", "$TAG").Listen(context.Background())
	require.NoError(t, err)

	got := collect(t, ch, 2)
	require.Len(t, got, 2)
	assert.Equal(t, domain.TweetObservation{TwitterID: "1", Text: "first", UserScreenName: "alice"}, got[0])
	assert.Equal(t, domain.TweetObservation{TwitterID: "2", Text: "second", UserScreenName: "bob"}, got[1])
	assert.Equal(t, "#topic,$TAG", gotTrack)

	// server closed the response, the channel must close too
	_, open := <-ch
	assert.False(t, open)
}

func TestStreamRejectsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(420) // Twitter's non-standard "Enhance Your Calm"; no net/http constant exists
	}))
	defer srv.Close()

	_, err := newStream(srv.URL, "#topic").Listen(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "420")
}

func TestStreamStopsOnContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id_str":"1","text":"first","user":{"screen_name":"alice"}}` + "\n"))
		if f, ok := w.(http.Flusher); ok {
			f.Flush()
		}
		// hold the connection open until the client goes away
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := newStream(srv.URL, "#topic").Listen(ctx)
	require.NoError(t, err)

	got := collect(t, ch, 1)
	require.Len(t, got, 1)

	cancel()
	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(5 * time.Second):
		t.Fatal("channel did not close after cancel")
	}
}
