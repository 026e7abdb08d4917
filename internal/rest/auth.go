package rest

import (
	"errors"
	"net/http"
	"time"

	"github.com/dghubble/oauth1"
	twitterOAuth "github.com/dghubble/oauth1/twitter"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/favsync/favsync/domain"
	"github.com/favsync/favsync/internal/rest/middleware"
)

// AuthConfig carries what the OAuth handshake needs.
type AuthConfig struct {
	ConsumerKey    string
	ConsumerSecret string
	CallbackURL    string
	SessionTTL     time.Duration
}

// AuthHandler drives the three-legged OAuth login, session creation and
// the account-destroying logout.
type AuthHandler struct {
	oauthConfig *oauth1.Config
	verifier    domain.AccountVerifier
	users       domain.UserUsecase
	sessions    domain.SessionStore
	sessionTTL  time.Duration
}

func NewAuthHandler(cfg AuthConfig, verifier domain.AccountVerifier, users domain.UserUsecase, sessions domain.SessionStore) *AuthHandler {
	return &AuthHandler{
		oauthConfig: &oauth1.Config{
			ConsumerKey:    cfg.ConsumerKey,
			ConsumerSecret: cfg.ConsumerSecret,
			CallbackURL:    cfg.CallbackURL,
			Endpoint:       twitterOAuth.AuthorizeEndpoint,
		},
		verifier:   verifier,
		users:      users,
		sessions:   sessions,
		sessionTTL: cfg.SessionTTL,
	}
}

// Login starts the handshake and redirects to the provider.
func (h *AuthHandler) Login(c *gin.Context) {
	requestToken, requestSecret, err := h.oauthConfig.RequestToken()
	if err != nil {
		logrus.Errorf("oauth request token: %v", err)
		c.JSON(http.StatusBadGateway, ResponseError{Message: "login is unavailable"})
		return
	}

	if err := h.sessions.SaveRequestSecret(c.Request.Context(), requestToken, requestSecret); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	authorizationURL, err := h.oauthConfig.AuthorizationURL(requestToken)
	if err != nil {
		logrus.Errorf("oauth authorization url: %v", err)
		c.JSON(http.StatusBadGateway, ResponseError{Message: "login is unavailable"})
		return
	}

	c.Redirect(http.StatusFound, authorizationURL.String())
}

// Callback finishes the handshake, upserts the account and opens a session.
func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	requestToken, verifier, err := oauth1.ParseAuthorizationCallback(c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrBadParamInput.Error()})
		return
	}

	requestSecret, err := h.sessions.TakeRequestSecret(ctx, requestToken)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	accessToken, accessSecret, err := h.oauthConfig.AccessToken(requestToken, requestSecret, verifier)
	if err != nil {
		logrus.Errorf("oauth access token exchange: %v", err)
		c.JSON(http.StatusBadGateway, ResponseError{Message: "login failed"})
		return
	}

	profile, err := h.verifier.VerifyCredentials(ctx, domain.Credentials{
		AccessToken: accessToken,
		TokenSecret: accessSecret,
	})
	if err != nil {
		logrus.Errorf("verify credentials: %v", err)
		c.JSON(http.StatusBadGateway, ResponseError{Message: "login failed"})
		return
	}

	u, err := h.users.Login(ctx, profile)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	sid, err := h.sessions.Create(ctx, u.ID)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.SetCookie(middleware.SessionCookie, sid, int(h.sessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// Logout closes the session and destroys the account row. Logging in
// again recreates the account from scratch.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if sid, err := c.Cookie(middleware.SessionCookie); err == nil && sid != "" {
		if err := h.sessions.Delete(ctx, sid); err != nil {
			logrus.Warnf("failed to delete session: %v", err)
		}
	}

	if u, ok := middleware.UserFromContext(c); ok {
		if err := h.users.Logout(ctx, u); err != nil {
			c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
