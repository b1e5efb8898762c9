package handlers

import (
	"net/http"

	request "budget_portal/internal/adapter/http/dto/request"
	"budget_portal/internal/domain/workflow"
	"budget_portal/internal/usecase"
	"budget_portal/internal/usecase/interfaces"
	"budget_portal/pkg"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid user id or credential", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return errUnauthorized
	case errors.Is(err, usecase.ErrRoleNotHeld):
		return pkg.NewDomainErrorSimple("NOT_PERMITTED", "Role not held by this user", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidRole):
		return errInvalidRequest
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapEstimationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimationID),
		errors.Is(err, usecase.ErrInvalidLineItemID),
		errors.Is(err, usecase.ErrInvalidAction),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrInvalidRole),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, request.ErrInvalidRoleFilter),
		errors.Is(err, request.ErrInvalidStatusFilter):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrRemarkRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "A remark is required to return or reject", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCeilingExceeded):
		return pkg.NewDomainErrorSimple("CEILING_EXCEEDED", "Proposed total exceeds the line item ceiling", http.StatusBadRequest)
	case errors.Is(err, workflow.ErrNotPermitted):
		return pkg.NewDomainErrorSimple("NOT_PERMITTED", "Action not permitted for the active role", http.StatusForbidden)
	case workflow.IsRejectedTransition(err):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action not allowed in the record's current state", http.StatusConflict)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Record was changed by another request", http.StatusConflict)
	case errors.Is(err, usecase.ErrEstimationNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Budget line item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
