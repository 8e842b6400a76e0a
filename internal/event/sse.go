package event

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type SSEServer struct {
	clients  map[string]map[chan Event]bool
	retained map[string]Event
	events   chan Event
	mu       sync.Mutex
}

func NewSSEServer() EventSender {
	return &SSEServer{
		clients:  make(map[string]map[chan Event]bool),
		retained: make(map[string]Event),
		events:   make(chan Event),
	}
}

// Register subscribes a client to a topic. If the topic has a
// retained event (the badge keeps its last known unread count), it is
// replayed to the new client immediately; a badge connected before the
// first notification load receives nothing until it settles.
func (s *SSEServer) Register(topic string, client chan Event) {
	s.mu.Lock()
	if _, ok := s.clients[topic]; !ok {
		s.clients[topic] = make(map[chan Event]bool)
	}
	s.clients[topic][client] = true
	retained, hasRetained := s.retained[topic]
	total := len(s.clients[topic])
	s.mu.Unlock()

	if hasRetained {
		select {
		case client <- retained:
		case <-time.After(time.Second):
		}
	}
	log.Info().Msgf("New client registered to topic %s. Total clients: %d", topic, total)
}

// Unregister removes a client from a topic. The channel is left open
// so an in-flight fan-out cannot send on a closed channel; it times
// out instead.
func (s *SSEServer) Unregister(topic string, client chan Event) {
	s.mu.Lock()
	if clients, ok := s.clients[topic]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(s.clients, topic)
		}
	}
	remaining := len(s.clients[topic])
	s.mu.Unlock()
	log.Info().Msgf("Client unregistered from topic %s. Remaining clients: %d", topic, remaining)
}

// Broadcast sends an event to every client of its topic.
func (s *SSEServer) Broadcast(event Event) {
	s.events <- event
}

// Run consumes the event stream and fans out to subscribers. Slow
// clients are skipped after a short timeout instead of blocking the
// stream.
func (s *SSEServer) Run() {
	for event := range s.events {
		s.mu.Lock()
		s.retained[event.Topic] = event
		clients := make([]chan Event, 0, len(s.clients[event.Topic]))
		for client := range s.clients[event.Topic] {
			clients = append(clients, client)
		}
		s.mu.Unlock()

		var wg sync.WaitGroup
		for _, client := range clients {
			wg.Add(1)
			go func(c chan Event) {
				defer wg.Done()
				select {
				case c <- event:
				case <-time.After(time.Second):
					log.Warn().Str("topic", event.Topic).Msg("dropped event for slow client")
				}
			}(client)
		}
		wg.Wait()
	}
}
