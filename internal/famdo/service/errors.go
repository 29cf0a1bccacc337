package service

import "errors"

// The error kinds the core surfaces. Denial and unauthenticated states are
// ordinary outcomes, not crash conditions: the worst case anywhere in this
// package is a return to the unauthenticated or no-family state.
var (
	// ErrUnauthenticated reports that no usable session exists. Everything
	// downstream of the session gate short-circuits on it.
	ErrUnauthenticated = errors.New("no usable session")

	// ErrMalformed reports an input that failed structural decoding (a
	// bearer token payload, an invitation code). Malformed input is treated
	// conservatively as invalid, never partially trusted.
	ErrMalformed = errors.New("malformed input")

	// ErrConflict reports a violation of the single-membership or
	// single-leader invariant.
	ErrConflict = errors.New("conflicts with existing membership")

	// ErrNotFound reports a family, invitation code or task missing from
	// the caller's known state.
	ErrNotFound = errors.New("not found")

	// ErrDenied reports that the permission model disallows the action.
	// Callers render it as a disabled or absent control, not a failure.
	ErrDenied = errors.New("not permitted")

	// ErrTitleRequired reports a task create/update without a title.
	ErrTitleRequired = errors.New("task title is required")

	// ErrNameRequired reports a family create without a name.
	ErrNameRequired = errors.New("family name is required")

	// ErrAssigneeNotMember reports an attempt to assign a family task to
	// someone who is not a current member of that family.
	ErrAssigneeNotMember = errors.New("assignee is not a member of the family")
)
