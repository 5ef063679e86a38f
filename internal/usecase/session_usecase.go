package usecase

import (
	"context"
	"log"
	"net/http"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"
)

// SandboxUser stands in for the backend profile while the sandbox admin
// session is active.
var SandboxUser = entities.User{ID: "sandbox-admin", Name: "Sandbox admin", Role: "admin", IsAdmin: true}

// SessionInfo describes the caller as seen by the portal.
type SessionInfo struct {
	Authenticated bool
	Sandbox       bool
	User          *entities.User
}

func (s SessionInfo) IsAdmin() bool {
	return s.User != nil && s.User.IsAdmin
}

type ISessionUseCase interface {
	Current(ctx context.Context, token string, sandbox bool) (SessionInfo, error)
}

type SessionUseCase struct {
	users interfaces.IUserGateway
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(users interfaces.IUserGateway) *SessionUseCase {
	return &SessionUseCase{users: users}
}

// Current resolves the caller's profile. A token the backend refuses reads as
// signed out rather than as an error.
func (u *SessionUseCase) Current(ctx context.Context, token string, sandbox bool) (SessionInfo, error) {
	if trimmed(token) == "" {
		return SessionInfo{}, nil
	}
	if sandbox {
		user := SandboxUser
		return SessionInfo{Authenticated: true, Sandbox: true, User: &user}, nil
	}
	me, err := u.users.Me(ctx, token)
	if err != nil {
		switch backendStatus(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			log.Printf("[session][usecase] token refused by backend status=%d", backendStatus(err))
			return SessionInfo{}, nil
		}
		log.Printf("[session][usecase] profile lookup failed err=%v", err)
		return SessionInfo{}, err
	}
	return SessionInfo{Authenticated: true, User: &me}, nil
}
