package usecase

import (
	"context"
	"strings"
	"time"

	"budget_portal/internal/domain/entities"
	"budget_portal/internal/domain/workflow"
	"budget_portal/internal/infrastructure/logger"
	"budget_portal/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var (
	ErrEstimationNotFound  = errors.New("estimation not found")
	ErrLineItemNotFound    = errors.New("budget line item not found")
	ErrInvalidEstimationID = errors.New("invalid estimation id")
	ErrInvalidLineItemID   = errors.New("invalid budget line item id")
	ErrInvalidAction       = errors.New("invalid action")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidAmount       = errors.New("invalid estimate amount")
	ErrCeilingExceeded     = errors.New("batch exceeds ceiling limit")
	ErrRemarkRequired      = errors.New("remark required")
)

// ActionCommand is one UI action against a record. Fields is honoured only by
// save.
type ActionCommand struct {
	RecordID string
	Action   entities.Action
	Remark   string
	Fields   *entities.EstimateFields
}

// IEstimationUseCase exposes the workflow boundary:
//   - applyAction(recordId, action) => ApplyAction()
//   - listRecords(filter) => ListRecords()
//   - creating a draft and reading a batch for the grids.

type IEstimationUseCase interface {
	CreateEstimation(ctx context.Context, sess entities.Session, lineItemID string, fields entities.EstimateFields, remark string) (entities.EstimationRecord, error)
	ApplyAction(ctx context.Context, sess entities.Session, cmd ActionCommand) (entities.EstimationRecord, error)
	GetByID(ctx context.Context, id string) (entities.EstimationRecord, error)
	ListRecords(ctx context.Context, filter entities.RecordFilter) ([]entities.EstimationRecord, error)
	ListBatch(ctx context.Context, lineItemID string) ([]entities.EstimationRecord, error)
}

type EstimationUseCase struct {
	repo      interfaces.IEstimationRepository
	lineItems interfaces.IBudgetLineItemRepository
	log       *logger.Logger
	now       func() time.Time
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(repo interfaces.IEstimationRepository, lineItems interfaces.IBudgetLineItemRepository, log *logger.Logger) *EstimationUseCase {
	return &EstimationUseCase{
		repo:      repo,
		lineItems: lineItems,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateEstimation opens a draft owned by the creator level.
func (u *EstimationUseCase) CreateEstimation(ctx context.Context, sess entities.Session, lineItemID string, fields entities.EstimateFields, remark string) (entities.EstimationRecord, error) {
	if sess.ActiveRole != entities.RoleCreator {
		return entities.EstimationRecord{}, errors.Wrapf(workflow.ErrNotPermitted, "role %q cannot create estimations", sess.ActiveRole)
	}
	lineItemID = strings.TrimSpace(lineItemID)
	if lineItemID == "" {
		return entities.EstimationRecord{}, ErrInvalidLineItemID
	}
	if fields.HasNegative() {
		return entities.EstimationRecord{}, ErrInvalidAmount
	}

	li, err := u.lineItems.GetByID(ctx, lineItemID)
	if err != nil {
		return entities.EstimationRecord{}, err
	}
	if li.ID == "" {
		return entities.EstimationRecord{}, ErrLineItemNotFound
	}

	siblings, err := u.repo.ListByBudgetLineItem(ctx, li.ID)
	if err != nil {
		return entities.EstimationRecord{}, err
	}
	if held, ok := lo.Find(siblings, func(r entities.EstimationRecord) bool { return !openForDrafts(r) }); ok {
		u.log.Infof("[estimation][usecase] draft refused line_item_id=%s batch_member=%s status=%s level=%s",
			li.ID, held.ID, held.Status, held.CurrentLevel)
		return entities.EstimationRecord{}, errors.Wrapf(workflow.ErrInvalidTransition,
			"line item %s is %s at %s level (estimation %s)", li.ID, held.Status, held.CurrentLevel, held.ID)
	}

	now := u.now()
	rec := entities.EstimationRecord{
		ID:               uuid.NewString(),
		BudgetLineItemID: li.ID,
		EstimateFields:   fields,
		Status:           entities.StatusDraft,
		CurrentLevel:     entities.RoleCreator,
		Remarks:          []entities.Remark{},
		CreatedBy:        sess.UserID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if text := strings.TrimSpace(remark); text != "" {
		rec.Remarks = append(rec.Remarks, u.newRemark(sess, entities.ActionSave, text, now))
	}

	created, err := u.repo.Create(ctx, rec, siblings)
	if err != nil {
		return entities.EstimationRecord{}, err
	}
	u.log.Infof("[estimation][usecase] draft created estimation_id=%s line_item_id=%s user_id=%s", created.ID, li.ID, sess.UserID)
	return created, nil
}

// openForDrafts reports whether a batch member still sits with the creator, the
// only level a new draft can join without splitting the batch.
func openForDrafts(r entities.EstimationRecord) bool {
	return r.CurrentLevel == entities.RoleCreator &&
		(r.Status == entities.StatusDraft || r.Status == entities.StatusReturned)
}

// ApplyAction runs one workflow action for the session's active role.
//
// save edits only the addressed record. Every other action moves the whole
// batch (all records of the same line item): each record is checked first and
// the store is written once, all-or-nothing.
func (u *EstimationUseCase) ApplyAction(ctx context.Context, sess entities.Session, cmd ActionCommand) (entities.EstimationRecord, error) {
	recordID := strings.TrimSpace(cmd.RecordID)
	if recordID == "" {
		return entities.EstimationRecord{}, ErrInvalidEstimationID
	}
	if !cmd.Action.Valid() {
		return entities.EstimationRecord{}, errors.Wrapf(ErrInvalidAction, "%q", cmd.Action)
	}
	remark := strings.TrimSpace(cmd.Remark)
	if remark == "" && (cmd.Action == entities.ActionReturn || cmd.Action == entities.ActionReject) {
		return entities.EstimationRecord{}, errors.Wrapf(ErrRemarkRequired, "%s needs a remark", cmd.Action)
	}

	rec, err := u.GetByID(ctx, recordID)
	if err != nil {
		return entities.EstimationRecord{}, err
	}

	if cmd.Action == entities.ActionSave {
		return u.save(ctx, sess, rec, cmd.Fields, remark)
	}

	batch, err := u.repo.ListByBudgetLineItem(ctx, rec.BudgetLineItemID)
	if err != nil {
		return entities.EstimationRecord{}, err
	}
	if !lo.ContainsBy(batch, func(r entities.EstimationRecord) bool { return r.ID == rec.ID }) {
		batch = append(batch, rec)
	}

	now := u.now()
	next := make([]entities.EstimationRecord, 0, len(batch))
	for _, r := range batch {
		status, level, err := workflow.Apply(r, sess.ActiveRole, cmd.Action)
		if err != nil {
			u.log.Infof("[estimation][usecase] action rejected estimation_id=%s batch_member=%s action=%s role=%s status=%s err=%v",
				rec.ID, r.ID, cmd.Action, sess.ActiveRole, r.Status, err)
			return entities.EstimationRecord{}, errors.Wrapf(err, "estimation %s", r.ID)
		}
		r = r.Clone()
		r.Status = status
		r.CurrentLevel = level
		r.UpdatedAt = now
		if remark != "" {
			r.Remarks = append(r.Remarks, u.newRemark(sess, cmd.Action, remark, now))
		}
		next = append(next, r)
	}

	if cmd.Action == entities.ActionSubmit {
		if err := u.checkCeiling(ctx, rec.BudgetLineItemID, next); err != nil {
			return entities.EstimationRecord{}, err
		}
	}

	updated, err := u.repo.ReplaceBatch(ctx, next)
	if err != nil {
		return entities.EstimationRecord{}, err
	}
	out, ok := lo.Find(updated, func(r entities.EstimationRecord) bool { return r.ID == rec.ID })
	if !ok {
		return entities.EstimationRecord{}, ErrEstimationNotFound
	}
	u.log.Infof("[estimation][usecase] action applied estimation_id=%s action=%s batch_size=%d status=%s level=%s user_id=%s",
		out.ID, cmd.Action, len(updated), out.Status, out.CurrentLevel, sess.UserID)
	return out, nil
}

func (u *EstimationUseCase) save(ctx context.Context, sess entities.Session, rec entities.EstimationRecord, fields *entities.EstimateFields, remark string) (entities.EstimationRecord, error) {
	if _, _, err := workflow.Apply(rec, sess.ActiveRole, entities.ActionSave); err != nil {
		return entities.EstimationRecord{}, errors.Wrapf(err, "estimation %s", rec.ID)
	}
	if fields != nil && fields.HasNegative() {
		return entities.EstimationRecord{}, ErrInvalidAmount
	}

	now := u.now()
	next := rec.Clone()
	if fields != nil {
		next.EstimateFields = *fields
	}
	if remark != "" {
		next.Remarks = append(next.Remarks, u.newRemark(sess, entities.ActionSave, remark, now))
	}
	next.UpdatedAt = now

	updated, err := u.repo.ReplaceBatch(ctx, []entities.EstimationRecord{next})
	if err != nil {
		return entities.EstimationRecord{}, err
	}
	if len(updated) == 0 {
		return entities.EstimationRecord{}, ErrEstimationNotFound
	}
	u.log.Infof("[estimation][usecase] saved estimation_id=%s status=%s user_id=%s", rec.ID, rec.Status, sess.UserID)
	return updated[0], nil
}

// checkCeiling rejects a batch whose proposed total exceeds the line item's
// ceiling limit.
func (u *EstimationUseCase) checkCeiling(ctx context.Context, lineItemID string, batch []entities.EstimationRecord) error {
	li, err := u.lineItems.GetByID(ctx, lineItemID)
	if err != nil {
		return err
	}
	if li.ID == "" {
		return ErrLineItemNotFound
	}
	total := lo.Reduce(batch, func(acc decimal.Decimal, r entities.EstimationRecord, _ int) decimal.Decimal {
		return acc.Add(r.ProposedEstimate)
	}, decimal.Zero)
	if total.GreaterThan(li.CeilingLimit) {
		return errors.Wrapf(ErrCeilingExceeded, "proposed total %s exceeds ceiling %s for %s", total.StringFixed(2), li.CeilingLimit.StringFixed(2), li.ID)
	}
	return nil
}

func (u *EstimationUseCase) newRemark(sess entities.Session, action entities.Action, text string, at time.Time) entities.Remark {
	return entities.Remark{
		ID:        uuid.NewString(),
		AuthorID:  sess.UserID,
		Role:      sess.ActiveRole,
		Action:    action,
		Text:      text,
		CreatedAt: at,
	}
}

func (u *EstimationUseCase) GetByID(ctx context.Context, id string) (entities.EstimationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimationRecord{}, ErrInvalidEstimationID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimationRecord{}, err
	}
	if rec.ID == "" {
		return entities.EstimationRecord{}, ErrEstimationNotFound
	}
	return rec, nil
}

func (u *EstimationUseCase) ListRecords(ctx context.Context, filter entities.RecordFilter) ([]entities.EstimationRecord, error) {
	if filter.Level != "" && !filter.Level.Valid() {
		return nil, errors.Wrapf(ErrInvalidRole, "%q", filter.Level)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, errors.Wrapf(ErrInvalidStatus, "%q", filter.Status)
	}
	return u.repo.List(ctx, filter)
}

func (u *EstimationUseCase) ListBatch(ctx context.Context, lineItemID string) ([]entities.EstimationRecord, error) {
	lineItemID = strings.TrimSpace(lineItemID)
	if lineItemID == "" {
		return nil, ErrInvalidLineItemID
	}
	li, err := u.lineItems.GetByID(ctx, lineItemID)
	if err != nil {
		return nil, err
	}
	if li.ID == "" {
		return nil, ErrLineItemNotFound
	}
	return u.repo.ListByBudgetLineItem(ctx, lineItemID)
}
