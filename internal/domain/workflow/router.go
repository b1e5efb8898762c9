package workflow

import "budget_portal/internal/domain/entities"

const (
	RouteDefaultDashboard = "/dashboard"
	RouteCreatorDashboard = "/dashboard/creator"
	RouteVerificationGrid = "/budget/verification"
	RouteApprovalGrid     = "/budget/approval"
)

// LandingRoute maps an active role to the route of its default work queue.
// Unknown roles land on the neutral dashboard.
func LandingRoute(role entities.Role) string {
	switch role {
	case entities.RoleCreator:
		return RouteCreatorDashboard
	case entities.RoleVerifier:
		return RouteVerificationGrid
	case entities.RoleApprover:
		return RouteApprovalGrid
	default:
		return RouteDefaultDashboard
	}
}
