package response

import (
	"time"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/domain/workflow"

	"github.com/samber/lo"
)

type SessionResponse struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	Roles        []string  `json:"roles"`
	ActiveRole   string    `json:"active_role"`
	LandingRoute string    `json:"landing_route"`
	ExpiresAt    time.Time `json:"expires_at"`
	Token        string    `json:"token,omitempty"`
}

// FromSession never copies the token; login sets it explicitly.
func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		SessionID:    s.ID,
		UserID:       s.UserID,
		DisplayName:  s.DisplayName,
		Roles:        lo.Map(s.Roles, func(r entities.Role, _ int) string { return string(r) }),
		ActiveRole:   string(s.ActiveRole),
		LandingRoute: workflow.LandingRoute(s.ActiveRole),
		ExpiresAt:    s.ExpiresAt,
	}
}

func FromLogin(s entities.Session) SessionResponse {
	res := FromSession(s)
	res.Token = s.Token
	return res
}
