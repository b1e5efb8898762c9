package entities

import "strings"

// Status is the workflow label attached to an estimation record.
//
// submitted and verified are display labels only; no valid status/level pair
// uses them.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusSubmitted         Status = "submitted"
	StatusUnderVerification Status = "under_verification"
	StatusVerified          Status = "verified"
	StatusUnderApproval     Status = "under_approval"
	StatusApproved          Status = "approved"
	StatusRejected          Status = "rejected"
	StatusReturned          Status = "returned"
)

var allStatuses = []Status{
	StatusDraft,
	StatusSubmitted,
	StatusUnderVerification,
	StatusVerified,
	StatusUnderApproval,
	StatusApproved,
	StatusRejected,
	StatusReturned,
}

// Statuses returns the closed status vocabulary in pipeline order.
func Statuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func (s Status) Valid() bool {
	for _, v := range allStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no further action is accepted.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Label is the text shown in the portal grids.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusSubmitted:
		return "Submitted"
	case StatusUnderVerification:
		return "Under Verification"
	case StatusVerified:
		return "Verified"
	case StatusUnderApproval:
		return "Under Approval"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusReturned:
		return "Returned"
	}
	return string(s)
}

// ParseStatus accepts the canonical token, case-insensitively.
func ParseStatus(raw string) (Status, bool) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	return s, s.Valid()
}

// Role is both a user role and the workflow level that owns a record.
type Role string

const (
	RoleCreator  Role = "creator"
	RoleVerifier Role = "verifier"
	RoleApprover Role = "approver"
)

var allRoles = []Role{RoleCreator, RoleVerifier, RoleApprover}

func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

func (r Role) Valid() bool {
	switch r {
	case RoleCreator, RoleVerifier, RoleApprover:
		return true
	}
	return false
}

func ParseRole(raw string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(raw)))
	return r, r.Valid()
}

// Action is a user command applied to an estimation record.
type Action string

const (
	ActionSave    Action = "save"
	ActionSubmit  Action = "submit"
	ActionReturn  Action = "return"
	ActionReject  Action = "reject"
	ActionApprove Action = "approve"
)

func Actions() []Action {
	return []Action{ActionSave, ActionSubmit, ActionReturn, ActionReject, ActionApprove}
}

func (a Action) Valid() bool {
	switch a {
	case ActionSave, ActionSubmit, ActionReturn, ActionReject, ActionApprove:
		return true
	}
	return false
}

// ChangesStatus is false only for save.
func (a Action) ChangesStatus() bool {
	return a.Valid() && a != ActionSave
}

func ParseAction(raw string) (Action, bool) {
	a := Action(strings.ToLower(strings.TrimSpace(raw)))
	return a, a.Valid()
}
