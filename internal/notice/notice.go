package notice

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level mirrors the snackbar variants the console shows.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notice is one transient, dismissible message naming a completed or
// failed action.
type Notice struct {
	ID      uuid.UUID `json:"id"`
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const defaultCapacity = 50

// Center collects the console's transient notices. It keeps the most
// recent ones only; a dismissed or evicted notice is gone.
type Center struct {
	mu       sync.Mutex
	notices  []Notice
	capacity int
	onNotice func(Notice)
}

// NewCenter creates a notice center. onNotice is called for every
// pushed notice (the SSE stream hook) and may be nil.
func NewCenter(onNotice func(Notice)) *Center {
	return &Center{capacity: defaultCapacity, onNotice: onNotice}
}

// Success records a success notice.
func (c *Center) Success(message string) Notice {
	return c.push(LevelSuccess, message)
}

// Failure records a failure notice naming the failed action.
func (c *Center) Failure(message string) Notice {
	return c.push(LevelError, message)
}

func (c *Center) push(level Level, message string) Notice {
	notice := Notice{
		ID:      uuid.New(),
		Level:   level,
		Message: message,
		At:      time.Now(),
	}

	c.mu.Lock()
	c.notices = append(c.notices, notice)
	if len(c.notices) > c.capacity {
		c.notices = c.notices[len(c.notices)-c.capacity:]
	}
	c.mu.Unlock()

	if c.onNotice != nil {
		c.onNotice(notice)
	}
	return notice
}

// List returns the retained notices, newest last.
func (c *Center) List() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

// Dismiss drops one notice. Dismissing an unknown id is a no-op.
func (c *Center) Dismiss(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.notices[:0]
	for _, n := range c.notices {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notices = kept
}
