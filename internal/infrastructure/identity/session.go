package identity

import (
	"log"
	"net/http"
	"strings"
)

const (
	// SessionCookie carries the identity provider's session JWT.
	SessionCookie = "__session"
	// SandboxDisabledCookie persists the sandbox admin opt-out.
	SandboxDisabledCookie = "portal_dev_admin_disabled"
)

// Session is what the portal knows about the caller.
type Session struct {
	Token   string
	UserID  string
	Sandbox bool
}

func (s Session) Authenticated() bool { return s.Token != "" }

// Authenticator resolves the backend token for an HTTP request.
type Authenticator struct {
	resolver *Resolver
	clerk    *ClerkClient
}

func NewAuthenticator(resolver *Resolver, clerk *ClerkClient) *Authenticator {
	return &Authenticator{resolver: resolver, clerk: clerk}
}

func (a *Authenticator) Authenticate(r *http.Request) Session {
	disabled := SandboxDisabled(r)
	if a.resolver.SandboxActive(disabled) {
		return Session{Token: a.resolver.Resolve(r.Context(), nil, disabled), Sandbox: true}
	}

	raw := SessionJWT(r)
	if raw == "" || a.clerk == nil {
		return Session{}
	}
	claims, err := a.clerk.Verify(raw)
	if err != nil {
		log.Printf("[identity][session] rejected err=%v", err)
		return Session{}
	}
	token := a.resolver.Resolve(r.Context(), a.clerk.Provider(claims.SessionID), disabled)
	if token == "" {
		return Session{}
	}
	return Session{Token: token, UserID: claims.Subject}
}

// SessionJWT reads the session JWT from the bearer header or the session cookie.
func SessionJWT(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return strings.TrimSpace(c.Value)
	}
	return ""
}

func SandboxDisabled(r *http.Request) bool {
	c, err := r.Cookie(SandboxDisabledCookie)
	return err == nil && c.Value == "1"
}
