package twitter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dghubble/oauth1"
	"github.com/sirupsen/logrus"

	"github.com/favsync/favsync/domain"
)

const (
	DefaultStreamBaseURL = "https://stream.twitter.com/1.1"

	// stream payloads can be large; the default scanner buffer is not enough
	streamScanBufBytes = 1 << 20

	streamChanBuf = 64
)

// StreamConfig carries the application-owned token pair the filtered
// stream is opened with, and the keyword track list.
type StreamConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	AccessToken    string
	AccessSecret   string
	BaseURL        string
	Track          []string
}

// Stream reads the platform's filtered stream. One Listen call maps to
// one streaming connection; reconnect policy belongs to the caller.
type Stream struct {
	http    *http.Client
	baseURL string
	track   []string
}

var _ domain.TweetStream = (*Stream)(nil)

// NewStream will create a filtered-stream reader for the given track list
func NewStream(cfg StreamConfig) *Stream {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultStreamBaseURL
	}

	oauthConfig := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
	// no client timeout here: a streaming response stays open indefinitely
	httpClient := oauthConfig.Client(oauth1.NoContext, token)

	return &Stream{
		http:    httpClient,
		baseURL: baseURL,
		track:   cfg.Track,
	}
}

type streamTweet struct {
	IDStr string `json:"id_str"`
	Text  string `json:"text"`
	User  struct {
		ScreenName string `json:"screen_name"`
	} `json:"user"`
}

func (s *Stream) Listen(ctx context.Context) (<-chan domain.TweetObservation, error) {
	form := url.Values{}
	form.Set("track", strings.Join(s.track, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/statuses/filter.json", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		resp.Body.Close()
		return nil, fmt.Errorf("statuses/filter: status %d: %s", resp.StatusCode, body)
	}

	ch := make(chan domain.TweetObservation, streamChanBuf)
	go s.consume(ctx, resp.Body, ch)
	return ch, nil
}

func (s *Stream) consume(ctx context.Context, body io.ReadCloser, ch chan<- domain.TweetObservation) {
	defer close(ch)
	defer body.Close()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, streamScanBufBytes), streamScanBufBytes)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			// keep-alive newline
			continue
		}

		var t streamTweet
		if err := json.Unmarshal([]byte(line), &t); err != nil {
			logrus.Warnf("skipping unparsable stream message: %v", err)
			continue
		}
		if t.IDStr == "" {
			// limit notices and other non-tweet messages
			continue
		}

		obs := domain.TweetObservation{
			TwitterID:      t.IDStr,
			Text:           t.Text,
			UserScreenName: t.User.ScreenName,
		}

		select {
		case ch <- obs:
		case <-ctx.Done():
			return
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		logrus.Warnf("tweet stream read error: %v", err)
	}
}
