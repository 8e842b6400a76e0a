package event

// Event is one message pushed to the console UI over SSE.
type Event struct {
	Topic string
	Type  string
	Data  interface{}
}

const (
	// TopicBadge carries the sidebar badge's unread count.
	TopicBadge = "badge"
	// TopicNotices carries transient success/failure notices.
	TopicNotices = "notices"
	// TopicOrder carries the open order's edit state, including the
	// optimistic/confirmed total phase.
	TopicOrder = "order"

	EventTypeUnreadCount = "unread_count"
	EventTypeNotice      = "notice"
	EventTypeOrderState  = "order_state"
)

// EventSender is the server pushing events to connected clients.
type EventSender interface {
	Register(topic string, client chan Event)
	Unregister(topic string, client chan Event)
	Broadcast(event Event)
	Run()
}
