package editor

import (
	"context"
	"errors"
	"sync"

	"github.com/nourhanadel/pharma-admin-BE/internal/form"
	"github.com/nourhanadel/pharma-admin-BE/internal/model"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrNoOrderOpen      = errors.New("no order is currently open")
	ErrItemOutOfRange   = errors.New("item index out of range")
	ErrNegativeQuantity = errors.New("quantity must be a non-negative integer")
	ErrNotModified      = errors.New("no header field differs from the opening snapshot")
)

// Gateway is the slice of the remote API the editor needs.
type Gateway interface {
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrder(ctx context.Context, order model.Order) error
	UpdateOrderItemQuantity(ctx context.Context, itemID int64, quantity int64) error
	DeleteOrder(ctx context.Context, id int64) error
}

// Phase tells whether the displayed total is the server's last word or
// a local recomputation still awaiting reconciliation.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseConfirmed
	PhaseOptimistic
)

func (p Phase) String() string {
	switch p {
	case PhaseConfirmed:
		return "confirmed"
	case PhaseOptimistic:
		return "optimistic"
	default:
		return "idle"
	}
}

// State is the editor snapshot handed to observers after every phase
// transition.
type State struct {
	Order model.Order
	Phase Phase
}

// HeaderDraft holds the order's editable header fields.
type HeaderDraft struct {
	Address       string
	TotalPrice    decimal.Decimal
	PaymentMethod string
}

func headerDraftEqual(a, b HeaderDraft) bool {
	return a.Address == b.Address &&
		a.PaymentMethod == b.PaymentMethod &&
		a.TotalPrice.Equal(b.TotalPrice)
}

// Editor owns one order's snapshot. A quantity edit is applied
// optimistically (the displayed total always equals the sum of the
// latest local line totals), then persisted item by item; on success
// the full order is re-fetched because the server is the final arbiter
// of the total. On failure the optimistic edit is rolled back, same as
// every other failed mutation in the console.
type Editor struct {
	gw       Gateway
	observer func(State)

	mu     sync.Mutex
	order  *model.Order
	phase  Phase
	header *form.Tracker[HeaderDraft]
}

// New creates an editor. observer receives the editor state after
// every phase transition and may be nil.
func New(gw Gateway, observer func(State)) *Editor {
	return &Editor{gw: gw, observer: observer, phase: PhaseIdle}
}

// Open fetches the full order and replaces the held snapshot. On
// failure the previously open snapshot, if any, stays untouched.
func (e *Editor) Open(ctx context.Context, orderID int64) error {
	order, err := e.fetch(ctx, orderID)
	if err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("failed to fetch order details")
		return err
	}

	e.mu.Lock()
	e.order = order
	e.phase = PhaseConfirmed
	e.header = nil
	state := e.stateLocked()
	e.mu.Unlock()

	e.notify(state)
	return nil
}

// SetQuantity changes one line item's quantity. Zero is a valid
// "zero units" line, not a removal.
func (e *Editor) SetQuantity(ctx context.Context, itemIndex int, quantity int64) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}

	e.mu.Lock()
	if e.order == nil {
		e.mu.Unlock()
		return ErrNoOrderOpen
	}
	if itemIndex < 0 || itemIndex >= len(e.order.Items) {
		e.mu.Unlock()
		return ErrItemOutOfRange
	}

	previous := cloneOrder(*e.order)
	previousPhase := e.phase

	items := make([]model.OrderItem, len(e.order.Items))
	copy(items, e.order.Items)
	item := items[itemIndex]
	item.Quantity = quantity
	item.LineTotal = item.ComputeLineTotal()
	items[itemIndex] = item

	e.order.Items = items
	// The new total must come from the post-edit item list.
	e.order.TotalPrice = model.SumItems(items)
	e.phase = PhaseOptimistic
	state := e.stateLocked()
	e.mu.Unlock()

	e.notify(state)

	if err := e.gw.UpdateOrderItemQuantity(ctx, item.ID, quantity); err != nil {
		log.Error().Err(err).Int64("item_id", item.ID).Msg("failed to persist item quantity")
		e.mu.Lock()
		e.order = &previous
		e.phase = previousPhase
		state = e.stateLocked()
		e.mu.Unlock()
		e.notify(state)
		return err
	}

	order, err := e.fetch(ctx, previous.ID)
	if err != nil {
		// The quantity was persisted; the optimistic total stands
		// until the next successful fetch.
		log.Error().Err(err).Int64("order_id", previous.ID).Msg("failed to reconcile order after quantity update")
		return err
	}

	e.mu.Lock()
	e.order = order
	e.phase = PhaseConfirmed
	state = e.stateLocked()
	e.mu.Unlock()

	e.notify(state)
	return nil
}

// BeginHeaderEdit captures the baseline snapshot of the editable
// header fields for dirty tracking.
func (e *Editor) BeginHeaderEdit() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.order == nil {
		return ErrNoOrderOpen
	}
	e.header = form.NewTracker(HeaderDraft{
		Address:       e.order.Address,
		TotalPrice:    e.order.TotalPrice,
		PaymentMethod: e.order.PaymentMethod,
	}, form.WithEqual(headerDraftEqual))
	return nil
}

// SetHeaderDraft replaces the header form's current values.
func (e *Editor) SetHeaderDraft(draft HeaderDraft) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.header == nil {
		return ErrNoOrderOpen
	}
	e.header.Set(draft)
	return nil
}

// HeaderDirty reports whether any header field differs from the
// baseline captured at BeginHeaderEdit.
func (e *Editor) HeaderDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.header != nil && e.header.Dirty()
}

// SaveHeader persists the header fields in one call. It refuses to
// issue the request when nothing changed.
func (e *Editor) SaveHeader(ctx context.Context) error {
	e.mu.Lock()
	if e.order == nil || e.header == nil {
		e.mu.Unlock()
		return ErrNoOrderOpen
	}
	if !e.header.Dirty() {
		e.mu.Unlock()
		return ErrNotModified
	}
	draft := e.header.Candidate()
	updated := cloneOrder(*e.order)
	updated.Address = draft.Address
	updated.TotalPrice = draft.TotalPrice
	updated.PaymentMethod = draft.PaymentMethod
	e.mu.Unlock()

	if err := e.gw.UpdateOrder(ctx, updated); err != nil {
		log.Error().Err(err).Int64("order_id", updated.ID).Msg("failed to update order header")
		return err
	}

	e.mu.Lock()
	e.order = &updated
	e.phase = PhaseConfirmed
	e.header.Reset(draft)
	state := e.stateLocked()
	e.mu.Unlock()

	e.notify(state)
	return nil
}

// Delete removes the order on the server. If the deleted order is the
// one currently open, the editor closes it.
func (e *Editor) Delete(ctx context.Context, orderID int64) error {
	if err := e.gw.DeleteOrder(ctx, orderID); err != nil {
		log.Error().Err(err).Int64("order_id", orderID).Msg("failed to delete order")
		return err
	}

	e.mu.Lock()
	if e.order != nil && e.order.ID == orderID {
		e.order = nil
		e.phase = PhaseIdle
		e.header = nil
	}
	e.mu.Unlock()
	return nil
}

// Snapshot returns the open order, the current total phase and
// whether an order is open at all.
func (e *Editor) Snapshot() (model.Order, Phase, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.order == nil {
		return model.Order{}, PhaseIdle, false
	}
	return cloneOrder(*e.order), e.phase, true
}

func (e *Editor) fetch(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := e.gw.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	// The list payloads omit line totals; fill them in locally.
	for i := range order.Items {
		order.Items[i].LineTotal = order.Items[i].ComputeLineTotal()
	}
	return order, nil
}

func (e *Editor) stateLocked() State {
	return State{Order: cloneOrder(*e.order), Phase: e.phase}
}

func (e *Editor) notify(state State) {
	if e.observer != nil {
		e.observer(state)
	}
}

func cloneOrder(order model.Order) model.Order {
	items := make([]model.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
