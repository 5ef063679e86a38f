// Package middleware resolves the caller's session and guards portal routes.
package middleware

import (
	"log"
	"net/http"

	"freight_portal/internal/infrastructure/identity"
	"freight_portal/internal/usecase"
	"freight_portal/pkg"

	"github.com/gin-gonic/gin"
)

const sessionKey = "portal_session"

// Authenticator resolves the backend token for a request.
type Authenticator interface {
	Authenticate(r *http.Request) identity.Session
}

// Authenticate stores the resolved session on the context. It never rejects.
func Authenticate(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(sessionKey, a.Authenticate(c.Request))
		c.Next()
	}
}

func SessionFrom(c *gin.Context) identity.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(identity.Session); ok {
			return s
		}
	}
	return identity.Session{}
}

// OwnerID is the key drafts are stored under.
func OwnerID(s identity.Session) string {
	if s.Sandbox {
		return usecase.SandboxUser.ID
	}
	return s.UserID
}

// RequireSession answers 401 when no backend token could be resolved.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !SessionFrom(c).Authenticated() {
			abort(c, pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized))
			return
		}
		c.Next()
	}
}

// RequireAdmin lets the sandbox session or a backend admin through.
func RequireAdmin(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := SessionFrom(c)
		if !s.Authenticated() {
			abort(c, pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized))
			return
		}
		info, err := sessions.Current(c.Request.Context(), s.Token, s.Sandbox)
		if err != nil {
			log.Printf("[http][middleware] admin check failed err=%v", err)
			abort(c, pkg.NewDomainError("BACKEND_UNREACHABLE", "Impossible de joindre le serveur", err, http.StatusBadGateway))
			return
		}
		if !info.Authenticated {
			abort(c, pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized))
			return
		}
		if !info.IsAdmin() {
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Administrator access required", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
