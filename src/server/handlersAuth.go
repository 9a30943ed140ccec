package server

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	cfg "storeadmin/src/configuration"
)

const tokenCookieMaxAge = 3600

type (
	// AuthHandler runs the OIDC authorization code flow and leaves the
	// resulting tokens in cookies that identify() reads back.
	AuthHandler struct {
		verifier               *oidc.IDTokenVerifier
		AuthConfig             *oauth2.Config
		URL                    string
		AccessTokenCookieName  string
		RefreshTokenCookieName string
		IDTokenCookieName      string
		StateCookieName        string
	}

	Account struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email,omitempty"`
		Picture string `json:"picture,omitempty"`
	}
)

func randString(nByte int) (string, error) {
	b := make([]byte, nByte)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// NewAuthHandler discovers the provider at config.Auth.Host.
func NewAuthHandler(ctx context.Context, config *cfg.Properties) (*AuthHandler, error) {
	provider, err := oidc.NewProvider(ctx, config.Auth.Host)
	if err != nil {
		return nil, fmt.Errorf("error creating OIDC provider: %w", err)
	}
	log.Printf("[auth] endpoint is %v", provider.Endpoint())
	authConfig := &oauth2.Config{
		ClientID:     config.Auth.ID,
		ClientSecret: config.Auth.Secret,
		RedirectURL:  config.Auth.Redirect,
		Endpoint:     provider.Endpoint(),
		Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
	}
	return &AuthHandler{
		verifier:               provider.Verifier(&oidc.Config{ClientID: config.Auth.ID}),
		AuthConfig:             authConfig,
		URL:                    config.Server.Name,
		AccessTokenCookieName:  config.Auth.AccessTokenCookieName,
		RefreshTokenCookieName: config.Auth.RefreshTokenCookieName,
		IDTokenCookieName:      config.Auth.IDTokenCookieName,
		StateCookieName:        config.Auth.StateCookieName,
	}, nil
}

// Authenticator verifies the ID tokens this handler hands out.
func (a *AuthHandler) Authenticator() *OIDCAuthenticator {
	return NewOIDCAuthenticator(a.verifier)
}

// Login returns the provider URL for clients that redirect themselves.
func (a *AuthHandler) Login(c *gin.Context) {
	state, err := a.newState(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ref": a.AuthConfig.AuthCodeURL(state)})
}

func (a *AuthHandler) Signin(c *gin.Context) {
	state, err := a.newState(c)
	if err != nil {
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	c.Redirect(http.StatusFound, a.AuthConfig.AuthCodeURL(state))
}

func (a *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(a.AccessTokenCookieName, "", -1, "/", a.URL, false, true)
	c.SetCookie(a.RefreshTokenCookieName, "", -1, "/", a.URL, false, true)
	c.SetCookie(a.IDTokenCookieName, "", -1, "/", a.URL, false, true)
	c.Status(http.StatusOK)
}

func (a *AuthHandler) Callback(c *gin.Context) {
	expected, err := c.Cookie(a.StateCookieName)
	if err != nil || expected == "" || c.Query("state") != expected {
		c.String(http.StatusBadRequest, "no current state found")
		return
	}
	c.SetCookie(a.StateCookieName, "", -1, "/", a.URL, false, true)

	token, err := a.AuthConfig.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		log.Printf("[auth] error getting access token: %v", err)
		c.String(http.StatusBadRequest, "Error getting access token")
		return
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		c.String(http.StatusBadRequest, "No ID token found in request to /callback")
		return
	}

	c.SetCookie(a.AccessTokenCookieName, token.AccessToken, tokenCookieMaxAge, "/", a.URL, false, true)
	c.SetCookie(a.RefreshTokenCookieName, token.RefreshToken, tokenCookieMaxAge, "/", a.URL, false, true)
	c.SetCookie(a.IDTokenCookieName, rawIDToken, tokenCookieMaxAge, "/", a.URL, false, true)

	callback, err := c.Cookie("callback")
	if err != nil || callback == "" {
		callback = "/"
	}
	c.Redirect(http.StatusFound, callback)
}

func (a *AuthHandler) Account(c *gin.Context) {
	rawIDToken, err := c.Cookie(a.IDTokenCookieName)
	if err != nil || rawIDToken == "" {
		c.String(http.StatusForbidden, "Unauthenticated")
		return
	}
	idToken, err := a.verifier.Verify(c.Request.Context(), rawIDToken)
	if err != nil {
		log.Printf("[auth] error verifying ID token: %v", err)
		c.String(http.StatusForbidden, "Unauthenticated")
		return
	}
	var claims struct {
		Name     string `json:"name"`
		Nickname string `json:"nickname"`
		Email    string `json:"email"`
		Picture  string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		log.Printf("[auth] can not parse claims: %v", err)
		c.String(http.StatusInternalServerError, "Internal error")
		return
	}
	name := claims.Name
	if name == "" {
		name = claims.Nickname
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "payload": Account{
		ID:      idToken.Subject,
		Name:    name,
		Email:   claims.Email,
		Picture: claims.Picture,
	}})
}

// newState stores a fresh anti-forgery state in a cookie and returns it.
func (a *AuthHandler) newState(c *gin.Context) (string, error) {
	state, err := randString(16)
	if err != nil {
		log.Printf("[auth] can not generate state: %v", err)
		return "", err
	}
	c.SetCookie(a.StateCookieName, state, 600, "/", a.URL, false, true)
	return state, nil
}
