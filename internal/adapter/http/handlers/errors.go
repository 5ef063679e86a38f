package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"freight_portal/internal/infrastructure/backend"
	"freight_portal/internal/usecase"
	"freight_portal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errUnreachable    = pkg.NewDomainErrorSimple("BACKEND_UNREACHABLE", "Impossible de joindre le serveur", http.StatusBadGateway)
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errAuthRequired   = pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindingError turns a ShouldBind failure into a 422 with per-field tags, or a
// 400 when the body is not even decodable.
func bindingError(err error) *pkg.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[lowerFirst(fe.Field())] = fe.Tag()
		}
		return pkg.NewValidationError(fields)
	}
	return errInvalidRequest
}

// mapBackendError covers the failures every backend-facing use case shares:
// validation, missing session, transport errors and backend HTTP answers.
// It returns nil for errors it does not know.
func mapBackendError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		return pkg.NewValidationError(verr.Fields)
	}
	if errors.Is(err, usecase.ErrSessionRequired) {
		return errAuthRequired
	}
	if errors.Is(err, backend.ErrUnreachable) {
		return pkg.NewDomainError(errUnreachable.Code, errUnreachable.Message, err, errUnreachable.HTTPStatus)
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return fromAPIError(apiErr)
	}
	return nil
}

// fromAPIError forwards the backend status and message. Server-side failures
// become a 502 since they are not the portal's own.
func fromAPIError(apiErr *backend.APIError) *pkg.AppError {
	status := apiErr.Status
	code := "BACKEND_ERROR"
	switch {
	case status == http.StatusUnauthorized:
		code = "UNAUTHORIZED"
	case status == http.StatusForbidden:
		code = "FORBIDDEN"
	case status == http.StatusNotFound:
		code = "NOT_FOUND"
	case status == http.StatusConflict:
		code = "CONFLICT"
	case status >= http.StatusInternalServerError:
		status = http.StatusBadGateway
	case status < http.StatusBadRequest:
		status = http.StatusBadGateway
	}
	return pkg.NewDomainError(code, apiErr.Message, apiErr, status)
}

func internalError(err error) *pkg.AppError {
	log.Printf("[http][handler] unmapped error err=%v", err)
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
