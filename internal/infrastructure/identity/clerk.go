package identity

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freight_portal/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoVerificationKey = errors.New("identity verification key not configured")
	ErrInvalidSession    = errors.New("invalid session token")
)

// SessionClaims are the fields read from a verified session JWT.
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// ClerkClient verifies session JWTs and mints backend tokens through the
// identity provider's session token endpoint.
type ClerkClient struct {
	apiURL    string
	secretKey string
	key       *rsa.PublicKey
	session   *http.Client
}

func NewClerkClient(cfg config.IdentityConfig, session *http.Client) (*ClerkClient, error) {
	if session == nil {
		session = &http.Client{Timeout: 10 * time.Second}
	}
	c := &ClerkClient{
		apiURL:    strings.TrimRight(cfg.APIURL, "/"),
		secretKey: cfg.SecretKey,
		session:   session,
	}
	if pem := strings.TrimSpace(cfg.JWTPublicKey); pem != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(strings.ReplaceAll(pem, `\n`, "\n")))
		if err != nil {
			return nil, fmt.Errorf("parse identity public key: %w", err)
		}
		c.key = key
	}
	return c, nil
}

// Verify checks an RS256 session JWT and returns its claims.
func (c *ClerkClient) Verify(raw string) (SessionClaims, error) {
	if c.key == nil {
		return SessionClaims{}, ErrNoVerificationKey
	}
	var claims SessionClaims
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	token, err := parser.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		return c.key, nil
	})
	if err != nil || !token.Valid {
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if claims.SessionID == "" {
		return SessionClaims{}, fmt.Errorf("%w: missing sid", ErrInvalidSession)
	}
	return claims, nil
}

// Provider mints tokens for the given session id.
func (c *ClerkClient) Provider(sessionID string) Provider {
	return func(ctx context.Context, template string) (string, error) {
		return c.sessionToken(ctx, sessionID, template)
	}
}

func (c *ClerkClient) sessionToken(ctx context.Context, sessionID, template string) (string, error) {
	endpoint := c.apiURL + "/v1/sessions/" + url.PathEscape(sessionID) + "/tokens"
	if template != "" {
		endpoint += "/" + url.PathEscape(template)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("session token status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var out struct {
		JWT string `json:"jwt"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode session token: %w", err)
	}
	return out.JWT, nil
}
