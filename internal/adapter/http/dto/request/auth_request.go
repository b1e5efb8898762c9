package request

import (
	"strings"

	"budget_portal/internal/domain/entities"
)

type LoginRequest struct {
	UserID     string `json:"user_id" binding:"required" example:"creator001"`
	Credential string `json:"credential" binding:"required" example:"creator123"`
	Role       string `json:"role" example:"creator"`
}

// ResolveRole returns the preferred role, or "" when none was sent.
func (r LoginRequest) ResolveRole() (entities.Role, bool) {
	if strings.TrimSpace(r.Role) == "" {
		return "", true
	}
	return entities.ParseRole(r.Role)
}

type SwitchRoleRequest struct {
	Role string `json:"role" binding:"required" example:"verifier"`
}

func (r SwitchRoleRequest) ResolveRole() (entities.Role, bool) {
	return entities.ParseRole(r.Role)
}
