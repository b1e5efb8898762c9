package workflow

import (
	"testing"

	"budget_portal/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestLandingRoute(t *testing.T) {
	assert.Equal(t, RouteCreatorDashboard, LandingRoute(entities.RoleCreator))
	assert.Equal(t, RouteVerificationGrid, LandingRoute(entities.RoleVerifier))
	assert.Equal(t, RouteApprovalGrid, LandingRoute(entities.RoleApprover))
	assert.Equal(t, RouteDefaultDashboard, LandingRoute(entities.Role("auditor")))
	assert.Equal(t, RouteDefaultDashboard, LandingRoute(""))
}
