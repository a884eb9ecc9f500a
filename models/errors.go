package models

import "fmt"

// Domain error taxonomy. Controllers map these onto HTTP categories, nothing
// below the controller layer knows about status codes.

// ValidationError is a semantically wrong caller input. Never retried.
type ValidationError struct {
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Detail)
	}
	return e.Detail
}

// InvalidTransitionError is a state-machine contract violation.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// LockedEntryError is any write attempt against a locked entity.
type LockedEntryError struct {
	Entity string
	ID     int64
}

func (e *LockedEntryError) Error() string {
	return fmt.Sprintf("%s %d is locked and cannot be modified", e.Entity, e.ID)
}

// CompletionBlockedError carries the specific unmet gate-completion
// precondition. The same operation may succeed later.
type CompletionBlockedError struct {
	Reason string
}

func (e *CompletionBlockedError) Error() string {
	return "completion blocked: " + e.Reason
}

// NotFoundError is a missing workflow subject.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// ConflictError is a duplicate or already-done operation (e.g. GRPO already
// posted, attachment already linked).
type ConflictError struct {
	Detail string
}

func (e *ConflictError) Error() string {
	return e.Detail
}
