package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nourhanadel/pharma-admin-BE/internal/model"
)

// ListNotifications fetches the full notification feed. The list
// payload does not include the nested order summaries.
func (g *Gateway) ListNotifications(ctx context.Context) ([]model.Notification, error) {
	var notifications []model.Notification
	if err := g.get(ctx, "list notifications", "/api/notifications", &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// GetNotification fetches one notification's detail, including the
// order it was raised for. The server marks the notification read as
// a side effect of this call.
func (g *Gateway) GetNotification(ctx context.Context, id int64) (*model.NotificationDetail, error) {
	detail := new(model.NotificationDetail)
	path := fmt.Sprintf("/api/notifications/%d", id)
	if err := g.get(ctx, "get notification", path, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

// SetNotificationRead marks one notification read or unread.
func (g *Gateway) SetNotificationRead(ctx context.Context, id int64, read bool) error {
	suffix := "unread"
	if read {
		suffix = "read"
	}
	path := fmt.Sprintf("/api/notifications/%d/%s", id, suffix)
	return g.write(ctx, "set notification "+suffix, http.MethodPatch, path, nil)
}

// BulkSetNotificationsRead marks every notification read or unread in
// one call.
func (g *Gateway) BulkSetNotificationsRead(ctx context.Context, read bool) error {
	path := "/api/notifications/mark-all-unread"
	op := "mark all notifications unread"
	if read {
		path = "/api/notifications/mark-all-read"
		op = "mark all notifications read"
	}
	return g.write(ctx, op, http.MethodPatch, path, nil)
}

// DeleteNotification removes one notification on the server.
func (g *Gateway) DeleteNotification(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/notifications/%d", id)
	return g.write(ctx, "delete notification", http.MethodDelete, path, nil)
}
