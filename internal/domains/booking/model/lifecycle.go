package model

import "fmt"

// Lifecycle is the table of (from, to) status pairs a status change may follow.
type Lifecycle struct {
	strict  bool
	allowed map[Status][]Status
}

// PermissiveLifecycle lets any status move to any status.
func PermissiveLifecycle() Lifecycle {
	allowed := make(map[Status][]Status, len(Statuses))
	for _, from := range Statuses {
		allowed[from] = Statuses
	}

	return Lifecycle{allowed: allowed}
}

// StrictLifecycle only moves forward. Approved and rejected are terminal.
func StrictLifecycle() Lifecycle {
	return Lifecycle{
		strict: true,
		allowed: map[Status][]Status{
			StatusPending:   {StatusConfirmed, StatusApproved, StatusRejected},
			StatusConfirmed: {StatusApproved, StatusRejected},
		},
	}
}

func NewLifecycle(strict bool) Lifecycle {
	if strict {
		return StrictLifecycle()
	}

	return PermissiveLifecycle()
}

func (l Lifecycle) Strict() bool {
	return l.strict
}

func (l Lifecycle) Allows(from, to Status) bool {
	for _, next := range l.allowed[from] {
		if next == to {
			return true
		}
	}

	return false
}

// SourcesFor returns every status that may move to the given one, in Statuses order.
func (l Lifecycle) SourcesFor(to Status) []Status {
	sources := []Status{}

	for _, from := range Statuses {
		if l.Allows(from, to) {
			sources = append(sources, from)
		}
	}

	return sources
}

// TransitionError reports a status change the lifecycle refuses.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking cannot move from %s to %s", e.From, e.To)
}
