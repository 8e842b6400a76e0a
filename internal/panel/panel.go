package panel

import (
	"context"
	"errors"
	"sync"

	"github.com/nourhanadel/pharma-admin-BE/internal/form"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoEditSession   = errors.New("no edit session is open")
	ErrNoPendingDelete = errors.New("no delete is pending confirmation")
	ErrRowNotFound     = errors.New("row not found in the loaded list")
	ErrNotModified     = errors.New("no field differs from the opening snapshot")
)

const defaultPageSize = 10

// Config parametrizes one Panel. The console repeats the same screen
// six times (users, medicines, orders, rare-medicine requests,
// feedback, contact messages): search box, windowed table, edit modal
// with dirty tracking, confirm-delete modal. One configuration record
// per resource replaces six hand-rolled state machines.
type Config[T any] struct {
	// Fetch returns the full, already sorted list.
	Fetch func(ctx context.Context) ([]T, error)
	// Update persists one edited row. Nil disables editing.
	Update func(ctx context.Context, row T) error
	// Delete removes one row by id. Nil disables deletion.
	Delete func(ctx context.Context, id int64) error
	// ID extracts the row identifier.
	ID func(row T) int64
	// Match reports whether a row matches the search term.
	Match func(row T, term string) bool
	// Equal compares two rows for dirty tracking. Nil falls back to
	// reflect.DeepEqual.
	Equal func(a, b T) bool
	// PageSize is the visible window increment. Zero means 10.
	PageSize int
}

// Panel is the state machine behind one CRUD screen.
type Panel[T any] struct {
	cfg Config[T]

	mu            sync.Mutex
	items         []T
	term          string
	visible       int
	edit          *form.Tracker[T]
	editID        int64
	pendingDelete *int64
}

func New[T any](cfg Config[T]) *Panel[T] {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	return &Panel[T]{cfg: cfg, visible: cfg.PageSize}
}

// Load replaces the list with a fresh fetch. A failure leaves the
// previously loaded rows in place.
func (p *Panel[T]) Load(ctx context.Context) error {
	items, err := p.cfg.Fetch(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load panel rows")
		return err
	}

	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
	return nil
}

// SetSearch updates the search term. Filtering is applied on read.
func (p *Panel[T]) SetSearch(term string) {
	p.mu.Lock()
	p.term = term
	p.mu.Unlock()
}

// Visible returns the filtered rows limited to the current window,
// plus the total number of filtered rows.
func (p *Panel[T]) Visible() (rows []T, total int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	filtered := p.filteredLocked()
	total = len(filtered)
	if len(filtered) > p.visible {
		filtered = filtered[:p.visible]
	}
	rows = make([]T, len(filtered))
	copy(rows, filtered)
	return rows, total
}

// ViewMore widens the visible window by one page.
func (p *Panel[T]) ViewMore() {
	p.mu.Lock()
	p.visible += p.cfg.PageSize
	p.mu.Unlock()
}

// ViewLess collapses the window back to the first page.
func (p *Panel[T]) ViewLess() {
	p.mu.Lock()
	p.visible = p.cfg.PageSize
	p.mu.Unlock()
}

// BeginEdit opens an edit session on one row, capturing the dirty
// tracking baseline.
func (p *Panel[T]) BeginEdit(id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, row := range p.items {
		if p.cfg.ID(row) == id {
			options := []form.Option[T]{}
			if p.cfg.Equal != nil {
				options = append(options, form.WithEqual(p.cfg.Equal))
			}
			p.edit = form.NewTracker(row, options...)
			p.editID = id
			return nil
		}
	}
	return ErrRowNotFound
}

// SetDraft replaces the edit form's current values.
func (p *Panel[T]) SetDraft(draft T) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.edit == nil {
		return ErrNoEditSession
	}
	p.edit.Set(draft)
	return nil
}

// Dirty reports whether the open edit session differs from its
// baseline.
func (p *Panel[T]) Dirty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.edit != nil && p.edit.Dirty()
}

// SaveEdit persists the edited row and closes the session. It refuses
// to issue the request when nothing changed. Reloading the list is the
// caller's step, so a reload failure is never misreported as a failed
// save: once this returns nil the row has been persisted.
func (p *Panel[T]) SaveEdit(ctx context.Context) error {
	p.mu.Lock()
	if p.edit == nil {
		p.mu.Unlock()
		return ErrNoEditSession
	}
	if !p.edit.Dirty() {
		p.mu.Unlock()
		return ErrNotModified
	}
	draft := p.edit.Candidate()
	p.mu.Unlock()

	if err := p.cfg.Update(ctx, draft); err != nil {
		log.Error().Err(err).Msg("failed to save panel edit")
		return err
	}

	p.mu.Lock()
	p.edit = nil
	p.editID = 0
	p.mu.Unlock()

	return nil
}

// CancelEdit discards the open edit session.
func (p *Panel[T]) CancelEdit() {
	p.mu.Lock()
	p.edit = nil
	p.editID = 0
	p.mu.Unlock()
}

// RequestDelete records which row the confirm-delete modal is about.
func (p *Panel[T]) RequestDelete(id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, row := range p.items {
		if p.cfg.ID(row) == id {
			p.pendingDelete = &id
			return nil
		}
	}
	return ErrRowNotFound
}

// ConfirmDelete performs the pending delete. On success the row is
// removed locally; on failure it stays listed.
func (p *Panel[T]) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	if p.pendingDelete == nil {
		p.mu.Unlock()
		return ErrNoPendingDelete
	}
	id := *p.pendingDelete
	p.pendingDelete = nil
	p.mu.Unlock()

	if err := p.cfg.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("row_id", id).Msg("failed to delete panel row")
		return err
	}

	p.mu.Lock()
	kept := p.items[:0]
	for _, row := range p.items {
		if p.cfg.ID(row) != id {
			kept = append(kept, row)
		}
	}
	p.items = kept
	p.mu.Unlock()
	return nil
}

// CancelDelete dismisses the confirm-delete modal.
func (p *Panel[T]) CancelDelete() {
	p.mu.Lock()
	p.pendingDelete = nil
	p.mu.Unlock()
}

func (p *Panel[T]) filteredLocked() []T {
	if p.term == "" || p.cfg.Match == nil {
		return p.items
	}
	filtered := make([]T, 0, len(p.items))
	for _, row := range p.items {
		if p.cfg.Match(row, p.term) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}
