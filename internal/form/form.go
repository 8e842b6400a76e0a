package form

import (
	"reflect"
)

// Tracker implements the console's dirty-check pattern, shared by the
// order, user and product edit forms: capture an immutable baseline
// when the form opens, then compare the full candidate snapshot
// against it on every change. Because the comparison is a snapshot
// diff and not a dirty bit, editing a field and then editing it back
// to its original value disables the save action again.
type Tracker[T any] struct {
	baseline  T
	candidate T
	equal     func(a, b T) bool
}

// Option configures a Tracker.
type Option[T any] func(*Tracker[T])

// WithEqual overrides the comparison used for the snapshot diff.
// Needed for types whose natural Go equality is wrong for dirty
// checking, like decimal.Decimal where 10 and 10.00 must compare
// equal.
func WithEqual[T any](equal func(a, b T) bool) Option[T] {
	return func(t *Tracker[T]) {
		t.equal = equal
	}
}

// NewTracker captures baseline as the form's opening snapshot.
func NewTracker[T any](baseline T, options ...Option[T]) *Tracker[T] {
	t := &Tracker[T]{
		baseline:  baseline,
		candidate: baseline,
		equal: func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		},
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Set replaces the candidate snapshot with the form's current values.
func (t *Tracker[T]) Set(candidate T) {
	t.candidate = candidate
}

// Candidate returns the current form values.
func (t *Tracker[T]) Candidate() T {
	return t.candidate
}

// Baseline returns the snapshot captured when the form opened.
func (t *Tracker[T]) Baseline() T {
	return t.baseline
}

// Dirty reports whether the candidate differs from the baseline. The
// save action is enabled iff this is true.
func (t *Tracker[T]) Dirty() bool {
	return !t.equal(t.baseline, t.candidate)
}

// Reset re-captures the baseline, typically after a successful save.
func (t *Tracker[T]) Reset(baseline T) {
	t.baseline = baseline
	t.candidate = baseline
}
