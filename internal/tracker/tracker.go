package tracker

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/nourhanadel/pharma-admin-BE/internal/model"
	"github.com/rs/zerolog/log"
)

var ErrUnknownNotification = errors.New("notification not found in the current feed")

// Gateway is the slice of the remote API the tracker needs.
type Gateway interface {
	ListNotifications(ctx context.Context) ([]model.Notification, error)
	GetNotification(ctx context.Context, id int64) (*model.NotificationDetail, error)
	SetNotificationRead(ctx context.Context, id int64, read bool) error
	BulkSetNotificationsRead(ctx context.Context, read bool) error
	DeleteNotification(ctx context.Context, id int64) error
}

// Tracker owns the notification feed and its unread count. Local state
// changes only after the gateway call settles successfully; a failed
// call leaves the feed, the per-record flags and the count exactly as
// they were. The count is never adjusted by deltas: it is recomputed
// from the full feed on every settle, so concurrent in-flight
// mutations cannot drift it.
type Tracker struct {
	gw       Gateway
	onUnread func(int)

	mu            sync.Mutex
	notifications []model.Notification
	loaded        bool
	unread        int
	expandedID    int64
	expanded      *model.NotificationDetail
}

// New creates a tracker. onUnread receives the unread count after
// every settled mutation; it may be nil. It is called without the
// tracker lock held.
func New(gw Gateway, onUnread func(int)) *Tracker {
	return &Tracker{gw: gw, onUnread: onUnread}
}

// Load replaces the whole feed with a fresh fetch, sorted newest
// first (stable, so the server order is kept for equal timestamps).
// This is the ground-truth recomputation point for the unread count.
func (t *Tracker) Load(ctx context.Context) error {
	notifications, err := t.gw.ListNotifications(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load notifications")
		return err
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	t.mu.Lock()
	t.notifications = notifications
	t.loaded = true
	t.expandedID = 0
	t.expanded = nil
	unread := t.recountLocked()
	t.mu.Unlock()

	t.publish(unread)
	return nil
}

// Expand toggles detail visibility for one notification. Expanding an
// already expanded row collapses it without touching the network.
// Expanding a different row fetches its detail; the server marks the
// notification read as a side effect of that fetch, so the local flag
// follows suit.
func (t *Tracker) Expand(ctx context.Context, id int64) error {
	t.mu.Lock()
	if t.expandedID == id {
		t.expandedID = 0
		t.expanded = nil
		t.mu.Unlock()
		return nil
	}
	t.mu.Unlock()

	detail, err := t.gw.GetNotification(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("notification_id", id).Msg("failed to fetch notification details")
		return err
	}

	t.mu.Lock()
	t.expandedID = id
	t.expanded = detail
	for i := range t.notifications {
		if t.notifications[i].ID == id {
			t.notifications[i].IsRead = true
			break
		}
	}
	unread := t.recountLocked()
	t.mu.Unlock()

	t.publish(unread)
	return nil
}

// MarkRead marks one notification read. Calling it on a notification
// that is already read is a no-op and issues no request.
func (t *Tracker) MarkRead(ctx context.Context, id int64) error {
	return t.setRead(ctx, id, true)
}

// MarkUnread marks one notification unread. Calling it on a
// notification that is already unread is a no-op and issues no request.
func (t *Tracker) MarkUnread(ctx context.Context, id int64) error {
	return t.setRead(ctx, id, false)
}

func (t *Tracker) setRead(ctx context.Context, id int64, read bool) error {
	t.mu.Lock()
	found := false
	for i := range t.notifications {
		if t.notifications[i].ID == id {
			found = true
			if t.notifications[i].IsRead == read {
				t.mu.Unlock()
				return nil
			}
			break
		}
	}
	t.mu.Unlock()

	if !found {
		return ErrUnknownNotification
	}

	if err := t.gw.SetNotificationRead(ctx, id, read); err != nil {
		log.Error().Err(err).Int64("notification_id", id).Bool("read", read).Msg("failed to update notification read state")
		return err
	}

	t.mu.Lock()
	for i := range t.notifications {
		if t.notifications[i].ID == id {
			t.notifications[i].IsRead = read
			break
		}
	}
	unread := t.recountLocked()
	t.mu.Unlock()

	t.publish(unread)
	return nil
}

// MarkAllRead marks every notification read in one bulk call. On
// success the count is exactly zero regardless of its prior value.
func (t *Tracker) MarkAllRead(ctx context.Context) error {
	return t.setAllRead(ctx, true)
}

// MarkAllUnread marks every notification unread in one bulk call. On
// success the count equals the feed length.
func (t *Tracker) MarkAllUnread(ctx context.Context) error {
	return t.setAllRead(ctx, false)
}

func (t *Tracker) setAllRead(ctx context.Context, read bool) error {
	if err := t.gw.BulkSetNotificationsRead(ctx, read); err != nil {
		log.Error().Err(err).Bool("read", read).Msg("failed to bulk update notifications")
		return err
	}

	t.mu.Lock()
	for i := range t.notifications {
		t.notifications[i].IsRead = read
	}
	unread := t.recountLocked()
	t.mu.Unlock()

	t.publish(unread)
	return nil
}

// Remove deletes one notification. The count moves only if the
// removed notification was unread, which falls out of the recount.
func (t *Tracker) Remove(ctx context.Context, id int64) error {
	if err := t.gw.DeleteNotification(ctx, id); err != nil {
		log.Error().Err(err).Int64("notification_id", id).Msg("failed to delete notification")
		return err
	}

	t.mu.Lock()
	kept := t.notifications[:0]
	for _, n := range t.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	t.notifications = kept
	if t.expandedID == id {
		t.expandedID = 0
		t.expanded = nil
	}
	unread := t.recountLocked()
	t.mu.Unlock()

	t.publish(unread)
	return nil
}

// Unread returns the current unread count. ok is false until the
// first successful Load settles; the sidebar badge renders nothing
// until then.
func (t *Tracker) Unread() (count int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unread, t.loaded
}

// Snapshot returns a copy of the feed for read-only display.
func (t *Tracker) Snapshot() []model.Notification {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]model.Notification, len(t.notifications))
	copy(out, t.notifications)
	return out
}

// Expanded returns the currently expanded detail, if any.
func (t *Tracker) Expanded() (*model.NotificationDetail, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.expanded == nil {
		return nil, false
	}
	detail := *t.expanded
	return &detail, true
}

// recountLocked recomputes the unread count from the full feed. Must
// be called with the lock held; returns the fresh count for publish.
func (t *Tracker) recountLocked() int {
	count := 0
	for _, n := range t.notifications {
		if !n.IsRead {
			count++
		}
	}
	t.unread = count
	return count
}

func (t *Tracker) publish(unread int) {
	if t.onUnread != nil {
		t.onUnread(unread)
	}
}
