package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nourhanadel/pharma-admin-BE/internal/model"
	"github.com/nourhanadel/pharma-admin-BE/internal/util"
)

// collapsedPreviewLength bounds the message shown for a collapsed
// notification row; the full text comes with the expanded detail.
const collapsedPreviewLength = 80

type notificationRow struct {
	model.Notification
	Preview string `json:"preview"`
}

// notificationID parses the :id path parameter.
func notificationID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return 0, false
	}
	return id, true
}

// listNotifications returns the current feed snapshot, the expanded
// detail if any, and the unread count. unread_count is null until the
// first refresh has settled.
func (server *Server) listNotifications(ctx *gin.Context) {
	snapshot := server.tracker.Snapshot()
	feed := make([]notificationRow, len(snapshot))
	for i, n := range snapshot {
		feed[i] = notificationRow{
			Notification: n,
			Preview:      util.TruncateContent(n.Message, collapsedPreviewLength),
		}
	}

	response := gin.H{
		"notifications": feed,
	}

	if unread, ok := server.tracker.Unread(); ok {
		response["unread_count"] = unread
	} else {
		response["unread_count"] = nil
	}

	if detail, ok := server.tracker.Expanded(); ok {
		response["expanded"] = detail
	}

	ctx.JSON(http.StatusOK, response)
}

// refreshNotifications replaces the feed with a fresh fetch from the
// remote API. This is the ground-truth recomputation point for the
// badge.
func (server *Server) refreshNotifications(ctx *gin.Context) {
	if err := server.tracker.Load(ctx); err != nil {
		server.notices.Failure("Failed to load notifications")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.listNotifications(ctx)
}

// toggleNotification expands or collapses one notification's detail.
// Expanding fetches the nested order and marks the notification read.
func (server *Server) toggleNotification(ctx *gin.Context) {
	id, ok := notificationID(ctx)
	if !ok {
		return
	}

	if err := server.tracker.Expand(ctx, id); err != nil {
		server.notices.Failure("Failed to fetch notification details")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.listNotifications(ctx)
}

func (server *Server) markNotificationRead(ctx *gin.Context) {
	server.setNotificationRead(ctx, true)
}

func (server *Server) markNotificationUnread(ctx *gin.Context) {
	server.setNotificationRead(ctx, false)
}

func (server *Server) setNotificationRead(ctx *gin.Context, read bool) {
	id, ok := notificationID(ctx)
	if !ok {
		return
	}

	var err error
	if read {
		err = server.tracker.MarkRead(ctx, id)
	} else {
		err = server.tracker.MarkUnread(ctx, id)
	}
	if err != nil {
		if read {
			server.notices.Failure("Failed to mark notification as read")
		} else {
			server.notices.Failure("Failed to mark notification as unread")
		}
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.listNotifications(ctx)
}

func (server *Server) markAllNotificationsRead(ctx *gin.Context) {
	if err := server.tracker.MarkAllRead(ctx); err != nil {
		server.notices.Failure("Failed to mark all notifications as read")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.listNotifications(ctx)
}

func (server *Server) markAllNotificationsUnread(ctx *gin.Context) {
	if err := server.tracker.MarkAllUnread(ctx); err != nil {
		server.notices.Failure("Failed to mark all notifications as unread")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.listNotifications(ctx)
}

func (server *Server) deleteNotification(ctx *gin.Context) {
	id, ok := notificationID(ctx)
	if !ok {
		return
	}

	if err := server.tracker.Remove(ctx, id); err != nil {
		server.notices.Failure("Failed to delete notification")
		ctx.JSON(statusForError(err), errorResponse(err))
		return
	}

	server.listNotifications(ctx)
}

// getBadge returns the sidebar badge value. known is false until the
// first successful feed load; the badge renders nothing until then.
func (server *Server) getBadge(ctx *gin.Context) {
	unread, ok := server.tracker.Unread()
	if !ok {
		ctx.JSON(http.StatusOK, gin.H{"known": false})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"known": true, "unread_count": unread})
}
