package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-hclog"

	"portfolio-core/internal/config"
)

const (
	// SessionCookie carries the wall session token
	SessionCookie = "wall_session"

	sessionSubject = "wall"
	sessionIssuer  = "portfolio-core"
	sessionKey     = "wall_session"
)

// WallSession is the verified content of a session token
type WallSession struct {
	ID        string
	ExpiresAt time.Time
}

// WallAuth issues and verifies the HS256 tokens that unlock the upload wall
type WallAuth struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewWallAuth creates the wall session middleware. Without a configured
// secret a random one is generated, so sessions do not survive a restart.
func NewWallAuth(cfg config.WallConfig, logger hclog.Logger) (*WallAuth, error) {
	secret := []byte(cfg.TokenSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		if logger != nil {
			logger.Warn("WALL_TOKEN_SECRET not set, using an ephemeral secret")
		}
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &WallAuth{secret: secret, ttl: ttl, now: time.Now}, nil
}

// TTL returns how long issued sessions stay valid
func (a *WallAuth) TTL() time.Duration {
	return a.ttl
}

// Issue signs a new session token
func (a *WallAuth) Issue() (string, error) {
	now := a.now()
	id := make([]byte, 8)
	if _, err := rand.Read(id); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	claims := jwt.RegisteredClaims{
		ID:        hex.EncodeToString(id),
		Subject:   sessionSubject,
		Issuer:    sessionIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm, subject and expiry
func (a *WallAuth) Verify(token string) (*WallSession, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithSubject(sessionSubject),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return &WallSession{ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// RequireSession is a Gin middleware that rejects requests without a valid session
func (a *WallAuth) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "No session token provided",
			})
			c.Abort()
			return
		}

		session, err := a.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid or expired session",
				"details": err.Error(),
			})
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// LoadSession stores a valid session in the context when one is present
// and never aborts; pages use it to choose what to render
func (a *WallAuth) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := sessionToken(c); token != "" {
			if session, err := a.Verify(token); err == nil {
				c.Set(sessionKey, session)
			}
		}
		c.Next()
	}
}

// SetSessionCookie writes token as an HttpOnly cookie
func (a *WallAuth) SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, token, int(a.ttl.Seconds()), "/", "", c.Request.TLS != nil, true)
}

// ClearSessionCookie expires the session cookie
func (a *WallAuth) ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
}

// SessionFrom returns the session stored by RequireSession or LoadSession
func SessionFrom(c *gin.Context) (*WallSession, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	session, ok := v.(*WallSession)
	return session, ok
}
