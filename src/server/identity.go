package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

var errNoSubject = errors.New("token has no subject")

// Authenticator turns a bearer token into the caller's user id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// JWTAuthenticator accepts HS256 tokens signed with a shared key. The user
// id is the subject claim.
type JWTAuthenticator struct {
	key []byte
}

func NewJWTAuthenticator(signingKey string) *JWTAuthenticator {
	return &JWTAuthenticator{key: []byte(signingKey)}
}

func (a *JWTAuthenticator) Authenticate(_ context.Context, tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Subject == "" {
		return "", errNoSubject
	}
	return claims.Subject, nil
}

// Issue signs a token for userID valid for ttl.
func (a *JWTAuthenticator) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

// OIDCAuthenticator verifies ID tokens issued by the configured provider.
type OIDCAuthenticator struct {
	verifier *oidc.IDTokenVerifier
}

func NewOIDCAuthenticator(verifier *oidc.IDTokenVerifier) *OIDCAuthenticator {
	return &OIDCAuthenticator{verifier: verifier}
}

func (a *OIDCAuthenticator) Authenticate(ctx context.Context, rawIDToken string) (string, error) {
	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return "", fmt.Errorf("error verifying ID token: %w", err)
	}
	if idToken.Subject == "" {
		return "", errNoSubject
	}
	return idToken.Subject, nil
}

// identify resolves the caller from the Authorization header or, failing
// that, from cookieName. Requests without a valid token pass through
// anonymously; mutations reject them further down.
func identify(auth Authenticator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" && cookieName != "" {
			token, _ = c.Cookie(cookieName)
		}
		if token != "" {
			userID, err := auth.Authenticate(c.Request.Context(), token)
			if err == nil {
				c.Set(userIDKey, userID)
			} else {
				log.Printf("[identity] %v", err)
			}
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// currentUser returns the authenticated user id or "".
func currentUser(c *gin.Context) string {
	return c.GetString(userIDKey)
}
