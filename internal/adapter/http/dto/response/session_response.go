package response

import (
	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase"
)

type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email,omitempty"`
	Name    string `json:"name,omitempty"`
	Role    string `json:"role,omitempty"`
	IsAdmin bool   `json:"isAdmin"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, IsAdmin: u.IsAdmin}
}

type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	Sandbox       bool          `json:"sandbox"`
	IsAdmin       bool          `json:"isAdmin"`
	User          *UserResponse `json:"user,omitempty"`
	APIBaseURL    string        `json:"apiBaseUrl,omitempty"`
}

func FromSession(s usecase.SessionInfo, apiBaseURL string) SessionResponse {
	out := SessionResponse{
		Authenticated: s.Authenticated,
		Sandbox:       s.Sandbox,
		IsAdmin:       s.IsAdmin(),
		APIBaseURL:    apiBaseURL,
	}
	if s.User != nil {
		u := FromUser(*s.User)
		out.User = &u
	}
	return out
}
