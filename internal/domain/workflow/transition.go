package workflow

import (
	"budget_portal/internal/domain/entities"

	"github.com/cockroachdb/errors"
)

type state struct {
	status entities.Status
	level  entities.Role
}

type edge struct {
	from   state
	action entities.Action
}

// transitions is the complete pipeline. save is handled separately because it
// applies to every non-terminal pair.
var transitions = map[edge]state{
	{state{entities.StatusDraft, entities.RoleCreator}, entities.ActionSubmit}:    {entities.StatusUnderVerification, entities.RoleVerifier},
	{state{entities.StatusReturned, entities.RoleCreator}, entities.ActionSubmit}: {entities.StatusUnderVerification, entities.RoleVerifier},

	{state{entities.StatusUnderVerification, entities.RoleVerifier}, entities.ActionSubmit}: {entities.StatusUnderApproval, entities.RoleApprover},
	{state{entities.StatusReturned, entities.RoleVerifier}, entities.ActionSubmit}:          {entities.StatusUnderApproval, entities.RoleApprover},
	{state{entities.StatusUnderVerification, entities.RoleVerifier}, entities.ActionReturn}: {entities.StatusReturned, entities.RoleCreator},
	{state{entities.StatusUnderVerification, entities.RoleVerifier}, entities.ActionReject}: {entities.StatusRejected, entities.RoleVerifier},

	{state{entities.StatusUnderApproval, entities.RoleApprover}, entities.ActionApprove}: {entities.StatusApproved, entities.RoleApprover},
	{state{entities.StatusUnderApproval, entities.RoleApprover}, entities.ActionReturn}:  {entities.StatusReturned, entities.RoleVerifier},
	{state{entities.StatusUnderApproval, entities.RoleApprover}, entities.ActionReject}:  {entities.StatusRejected, entities.RoleApprover},
}

var validPairs = map[state]struct{}{
	{entities.StatusDraft, entities.RoleCreator}:              {},
	{entities.StatusUnderVerification, entities.RoleVerifier}: {},
	{entities.StatusUnderApproval, entities.RoleApprover}:     {},
	{entities.StatusApproved, entities.RoleApprover}:          {},
	{entities.StatusReturned, entities.RoleCreator}:           {},
	{entities.StatusReturned, entities.RoleVerifier}:          {},
	{entities.StatusRejected, entities.RoleVerifier}:          {},
	{entities.StatusRejected, entities.RoleApprover}:          {},
}

// ValidPair reports whether a record may carry this status and level together.
func ValidPair(status entities.Status, level entities.Role) bool {
	_, ok := validPairs[state{status, level}]
	return ok
}

// NextState computes the status and owning level after action. It never
// consults the actor; see Authorize.
func NextState(status entities.Status, level entities.Role, action entities.Action) (entities.Status, entities.Role, error) {
	if !action.Valid() {
		return status, level, errors.Wrapf(ErrInvalidTransition, "unknown action %q", action)
	}
	if !ValidPair(status, level) {
		return status, level, errors.Wrapf(ErrInconsistentState, "status %q at level %q", status, level)
	}
	if status.Terminal() {
		return status, level, errors.Wrapf(ErrTerminalState, "%s rejected, record is %s", action, status)
	}
	if action == entities.ActionSave {
		return status, level, nil
	}

	next, ok := transitions[edge{state{status, level}, action}]
	if !ok {
		return status, level, errors.Wrapf(ErrInvalidTransition, "%s is not allowed while %s at %s level", action, status, level)
	}
	return next.status, next.level, nil
}

// Authorize fails unless the acting role owns the record's current level.
func Authorize(actor, level entities.Role) error {
	if !actor.Valid() || actor != level {
		return errors.Wrapf(ErrNotPermitted, "role %q cannot act on records held by %q", actor, level)
	}
	return nil
}

// Apply is NextState preceded by Authorize, the check every handler needs.
func Apply(record entities.EstimationRecord, actor entities.Role, action entities.Action) (entities.Status, entities.Role, error) {
	if err := Authorize(actor, record.CurrentLevel); err != nil {
		return record.Status, record.CurrentLevel, err
	}
	return NextState(record.Status, record.CurrentLevel, action)
}
