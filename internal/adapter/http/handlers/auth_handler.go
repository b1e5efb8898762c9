package handlers

import (
	"net/http"

	request "budget_portal/internal/adapter/http/dto/request"
	response "budget_portal/internal/adapter/http/dto/response"
	"budget_portal/internal/infrastructure/logger"
	"budget_portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes the session lifecycle.

type AuthHandler struct {
	usecase usecase.ISessionUseCase
	log     *logger.Logger
}

func NewAuthHandler(uc usecase.ISessionUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{usecase: uc, log: log}
}

// Login godoc
// @Summary      Log in
// @Description  Exact user id and credential match. The active role defaults to the user's first role.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      200   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      401   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	role, ok := payload.ResolveRole()
	if !ok {
		writeError(c, errInvalidRequest)
		return
	}

	sess, err := h.usecase.Login(c.Request.Context(), payload.UserID, payload.Credential, role)
	if err != nil {
		h.log.Infof("[auth][handler] login failed user_id=%s err=%v", payload.UserID, err)
		writeError(c, mapSessionError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(sess))
}

// Logout godoc
// @Summary   Log out
// @Tags      auth
// @Security  Bearer
// @Success   204
// @Failure   401  {object}  pkg.HTTPError
// @Router    /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	if err := h.usecase.Logout(c.Request.Context(), sess.ID); err != nil {
		h.log.Errorf("[auth][handler] logout failed session_id=%s err=%v", sess.ID, err)
		writeError(c, mapSessionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSession godoc
// @Summary   Current session
// @Tags      auth
// @Security  Bearer
// @Produce   json
// @Success   200  {object}  response.SessionResponse
// @Failure   401  {object}  pkg.HTTPError
// @Router    /auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess))
}

// SwitchRole godoc
// @Summary   Switch the active role
// @Tags      auth
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     body  body      request.SwitchRoleRequest  true  "Role"
// @Success   200   {object}  response.SessionResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   403   {object}  pkg.HTTPError
// @Router    /auth/session/role [put]
func (h *AuthHandler) SwitchRole(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	var payload request.SwitchRoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	role, ok := payload.ResolveRole()
	if !ok {
		writeError(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.SwitchRole(c.Request.Context(), sess.ID, role)
	if err != nil {
		writeError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(updated))
}
