package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/oauth1"

	"github.com/favsync/favsync/domain"
)

const (
	DefaultAPIBaseURL = "https://api.twitter.com/1.1"

	defaultHTTPTimeout = 60 * time.Second

	// keep error payload snippets short in logs
	maxErrorBodyBytes = 512
)

// Config carries the application-level OAuth1 consumer pair and the
// endpoints to talk to. BaseURL is overridable for tests.
type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	BaseURL        string
	Timeout        time.Duration
}

// Client builds per-user API clients from stored credentials. It holds
// only the application consumer pair and carries no per-user state.
type Client struct {
	oauthConfig *oauth1.Config
	baseURL     string
	timeout     time.Duration
}

var (
	_ domain.TwitterClientFactory = (*Client)(nil)
	_ domain.AccountVerifier      = (*Client)(nil)
)

// NewClient will create a client factory for the given application credentials
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}
	return &Client{
		oauthConfig: oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret),
		baseURL:     baseURL,
		timeout:     timeout,
	}
}

func (c *Client) ClientFor(user domain.User) domain.TwitterClient {
	return c.clientFor(user.Credentials())
}

func (c *Client) clientFor(creds domain.Credentials) *userClient {
	token := oauth1.NewToken(creds.AccessToken, creds.TokenSecret)
	httpClient := c.oauthConfig.Client(oauth1.NoContext, token)
	httpClient.Timeout = c.timeout
	return &userClient{
		http:    httpClient,
		baseURL: c.baseURL,
	}
}

func (c *Client) VerifyCredentials(ctx context.Context, creds domain.Credentials) (domain.AuthProfile, error) {
	account, err := c.clientFor(creds).verifyCredentials(ctx)
	if err != nil {
		return domain.AuthProfile{}, err
	}
	return domain.AuthProfile{
		TwitterID:   account.IDStr,
		Name:        account.Name,
		AccessToken: creds.AccessToken,
		TokenSecret: creds.TokenSecret,
	}, nil
}

// userClient performs API calls signed with one user's token pair.
type userClient struct {
	http    *http.Client
	baseURL string
}

var _ domain.TwitterClient = (*userClient)(nil)

func (u *userClient) CreateFavorite(ctx context.Context, twitterID string) error {
	form := url.Values{}
	form.Set("id", twitterID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		u.baseURL+"/favorites/create.json", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("favorites/create %s: status %d: %s", twitterID, resp.StatusCode, body)
	}
	return nil
}

type account struct {
	IDStr string `json:"id_str"`
	Name  string `json:"name"`
}

func (u *userClient) verifyCredentials(ctx context.Context) (account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		u.baseURL+"/account/verify_credentials.json", nil)
	if err != nil {
		return account{}, err
	}

	resp, err := u.http.Do(req)
	if err != nil {
		return account{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return account{}, fmt.Errorf("verify_credentials: status %d: %s", resp.StatusCode, body)
	}

	var acc account
	if err := json.NewDecoder(resp.Body).Decode(&acc); err != nil {
		return account{}, err
	}
	return acc, nil
}
