// Package store keeps the client-side collections of centers, locals,
// owners and activities. Each Store owns one collection: pure reducers
// compute the next State, and the Store methods perform the gateway calls
// and apply the reducers to their results.
package store

import "github.com/diewo77/indh-market/internal/domain"

type Phase string

const (
	Idle    Phase = "idle"
	Loading Phase = "loading"
	Failed  Phase = "error"
)

type Status struct {
	Phase Phase  `json:"phase"`
	Error string `json:"error,omitempty"`
}

// State is one store's collection, newest first as returned by the gateway.
type State[T domain.Entity] struct {
	Items    []T    `json:"items"`
	Selected *T     `json:"selected"`
	Status   Status `json:"status"`
}

func initialState[T domain.Entity]() State[T] {
	return State[T]{Items: []T{}, Status: Status{Phase: Idle}}
}

// Reducers never mutate their input.

func fetchStarted[T domain.Entity](s State[T]) State[T] {
	s.Status = Status{Phase: Loading}
	return s
}

func fetchSucceeded[T domain.Entity](s State[T], items []T) State[T] {
	s.Items = append([]T{}, items...)
	s.Status = Status{Phase: Idle}
	return s
}

// fetchFailed keeps the previous items.
func fetchFailed[T domain.Entity](s State[T], msg string) State[T] {
	s.Status = Status{Phase: Failed, Error: msg}
	return s
}

func added[T domain.Entity](s State[T], item T) State[T] {
	items := make([]T, 0, len(s.Items)+1)
	items = append(items, item)
	s.Items = append(items, s.Items...)
	return s
}

// updated replaces the element with item's id in place.
func updated[T domain.Entity](s State[T], item T) State[T] {
	items := make([]T, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if items[i].EntityID() == item.EntityID() {
			items[i] = item
		}
	}
	s.Items = items
	return s
}

func deleted[T domain.Entity](s State[T], id string) State[T] {
	items := make([]T, 0, len(s.Items))
	for _, it := range s.Items {
		if it.EntityID() != id {
			items = append(items, it)
		}
	}
	s.Items = items
	return s
}

func selected[T domain.Entity](s State[T], item *T) State[T] {
	if item == nil {
		s.Selected = nil
		return s
	}
	v := *item
	s.Selected = &v
	return s
}
