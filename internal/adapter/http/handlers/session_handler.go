package handlers

import (
	"log"
	"net/http"

	response "freight_portal/internal/adapter/http/dto/response"
	"freight_portal/internal/adapter/http/middleware"
	"freight_portal/internal/infrastructure/backend"
	"freight_portal/internal/infrastructure/identity"
	"freight_portal/internal/usecase"
	"freight_portal/pkg"

	"github.com/gin-gonic/gin"
)

const sandboxCookieMaxAge = 60 * 60 * 24 * 365

// SessionHandler reports who the caller is and toggles the sandbox admin.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
	env     backend.Env
}

func NewSessionHandler(uc usecase.ISessionUseCase, env backend.Env) *SessionHandler {
	return &SessionHandler{usecase: uc, env: env}
}

// Current godoc
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	s := middleware.SessionFrom(c)
	info, err := h.usecase.Current(c.Request.Context(), s.Token, s.Sandbox)
	if err != nil {
		log.Printf("[session][handler] current failed sandbox=%t err=%v", s.Sandbox, err)
		writeError(c, mapSessionError(err))
		return
	}
	baseURL := backend.ResolveBrowserBaseURL(h.env, c.GetHeader("Origin"))
	c.JSON(http.StatusOK, response.FromSession(info, baseURL))
}

// DisableSandbox opts the browser out of the sandbox admin session.
func (h *SessionHandler) DisableSandbox(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(identity.SandboxDisabledCookie, "1", sandboxCookieMaxAge, "/", "", false, true)
	log.Printf("[session][handler] sandbox disabled")
	c.Status(http.StatusNoContent)
}

func (h *SessionHandler) EnableSandbox(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(identity.SandboxDisabledCookie, "", -1, "/", "", false, true)
	log.Printf("[session][handler] sandbox enabled")
	c.Status(http.StatusNoContent)
}

func mapSessionError(err error) *pkg.AppError {
	if appErr := mapBackendError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
