package handlers

import (
	"net/http"

	request "budget_portal/internal/adapter/http/dto/request"
	response "budget_portal/internal/adapter/http/dto/response"
	"budget_portal/internal/domain/entities"
	"budget_portal/internal/infrastructure/logger"
	"budget_portal/internal/usecase"
	"budget_portal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimationPayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATION_INPUT", "Invalid estimation payload", http.StatusBadRequest)
)

// EstimationHandler handles estimation records and their workflow actions.
// Every route runs behind RequireSession.

type EstimationHandler struct {
	usecase usecase.IEstimationUseCase
	log     *logger.Logger
}

func NewEstimationHandler(uc usecase.IEstimationUseCase, log *logger.Logger) *EstimationHandler {
	return &EstimationHandler{usecase: uc, log: log}
}

// ListEstimations godoc
// @Summary      List estimation records
// @Description  Filters combine. mine=true restricts to the queue of the active role.
// @Tags         estimations
// @Security     Bearer
// @Produce      json
// @Param        role          query     string  false  "Owning level"
// @Param        status        query     string  false  "Workflow status"
// @Param        line_item_id  query     string  false  "Budget line item"
// @Param        mine          query     bool    false  "Only the active role's queue"
// @Success      200           {array}   response.EstimationResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /estimations [get]
func (h *EstimationHandler) ListEstimations(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	var query request.ListEstimationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	filter, err := query.ToFilter(sess.ActiveRole)
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}

	records, err := h.usecase.ListRecords(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimations(records))
}

// GetEstimation godoc
// @Summary   Get an estimation record
// @Tags      estimations
// @Security  Bearer
// @Produce   json
// @Param     id   path      string  true  "Estimation id"
// @Success   200  {object}  response.EstimationResponse
// @Failure   404  {object}  pkg.HTTPError
// @Router    /estimations/{id} [get]
func (h *EstimationHandler) GetEstimation(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(rec))
}

// CreateEstimation godoc
// @Summary   Open a draft estimation
// @Tags      estimations
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     body  body      request.CreateEstimationRequest  true  "Draft"
// @Success   201   {object}  response.EstimationResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   403   {object}  pkg.HTTPError
// @Failure   404   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /estimations [post]
func (h *EstimationHandler) CreateEstimation(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	var payload request.CreateEstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimationPayload)
		return
	}

	rec, err := h.usecase.CreateEstimation(c.Request.Context(), sess, payload.ResolveLineItemID(), payload.ToFields(), payload.Remark)
	if err != nil {
		h.log.Infof("[estimation][handler] create failed line_item_id=%s user_id=%s err=%v", payload.LineItemID, sess.UserID, err)
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimation(rec))
}

// SaveEstimation godoc
// @Summary   Save field edits
// @Tags      estimations
// @Security  Bearer
// @Accept    json
// @Produce   json
// @Param     id    path      string                         true  "Estimation id"
// @Param     body  body      request.SaveEstimationRequest  true  "Amounts"
// @Success   200   {object}  response.EstimationResponse
// @Failure   400   {object}  pkg.HTTPError
// @Failure   403   {object}  pkg.HTTPError
// @Failure   409   {object}  pkg.HTTPError
// @Router    /estimations/{id} [patch]
func (h *EstimationHandler) SaveEstimation(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	var payload request.SaveEstimationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidEstimationPayload)
		return
	}

	fields := payload.ToFields()
	h.apply(c, sess, usecase.ActionCommand{
		RecordID: c.Param("id"),
		Action:   entities.ActionSave,
		Remark:   payload.Remark,
		Fields:   &fields,
	})
}

// ApplyAction godoc
// @Summary      Apply a workflow action
// @Description  submit, return, reject and approve move the whole batch of the record's line item.
// @Tags         estimations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Estimation id"
// @Param        body  body      request.ActionRequest  true  "Action"
// @Success      200   {object}  response.EstimationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /estimations/{id}/actions [post]
func (h *EstimationHandler) ApplyAction(c *gin.Context) {
	sess, ok := sessionFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
		return
	}
	var payload request.ActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	action, ok := payload.ResolveAction()
	if !ok {
		writeError(c, errInvalidRequest)
		return
	}

	h.apply(c, sess, usecase.ActionCommand{
		RecordID: c.Param("id"),
		Action:   action,
		Remark:   payload.Remark,
	})
}

func (h *EstimationHandler) apply(c *gin.Context, sess entities.Session, cmd usecase.ActionCommand) {
	rec, err := h.usecase.ApplyAction(c.Request.Context(), sess, cmd)
	if err != nil {
		h.log.Infof("[estimation][handler] action failed estimation_id=%s action=%s role=%s err=%v", cmd.RecordID, cmd.Action, sess.ActiveRole, err)
		writeError(c, mapEstimationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimation(rec))
}
