package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nourhanadel/pharma-admin-BE/internal/event"
)

// streamBadgeEvents pushes the unread count to the sidebar badge over
// SSE. The badge has no authoritative value until the first feed load
// settles; until then the stream carries nothing.
func (server *Server) streamBadgeEvents(c *gin.Context) {
	server.streamTopic(c, event.TopicBadge)
}

// streamNoticeEvents pushes transient success/failure notices.
func (server *Server) streamNoticeEvents(c *gin.Context) {
	server.streamTopic(c, event.TopicNotices)
}

func (server *Server) streamTopic(c *gin.Context, topic string) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Status(http.StatusOK)

	clientChan := make(chan event.Event, 1)
	server.eventSender.Register(topic, clientChan)
	defer server.eventSender.Unregister(topic, clientChan)

	for {
		select {
		case ev := <-clientChan:
			data, _ := json.Marshal(ev.Data)
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", ev.Type, data)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}
