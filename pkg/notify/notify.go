// Package notify collects user-facing notifications raised by the
// service (storage fallbacks, sync failures, reminders) in a bounded
// in-memory buffer that the API can page through.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"creator-studio/pkg/log"
)

// Level classifies a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// DefaultCapacity bounds the buffer when NewCenter is given a
// non-positive capacity.
const DefaultCapacity = 200

// Notification is one event surfaced to the user.
type Notification struct {
	ID        string            `json:"id"`
	Level     Level             `json:"level"`
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Center stores the most recent notifications. Old entries are dropped
// once capacity is reached. All methods are safe for concurrent use.
type Center struct {
	l   log.Logger
	mu  sync.Mutex
	buf []Notification
	cap int
}

// NewCenter creates a Center holding at most capacity notifications.
func NewCenter(l log.Logger, capacity int) *Center {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Center{
		l:   l,
		buf: make([]Notification, 0, capacity),
		cap: capacity,
	}
}

// Publish records a notification and mirrors it to the log at the
// matching level. Meta is copied so callers may reuse their map.
func (c *Center) Publish(ctx context.Context, level Level, code, message string, meta map[string]string) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Code:      code,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if len(meta) > 0 {
		n.Meta = make(map[string]string, len(meta))
		for k, v := range meta {
			n.Meta[k] = v
		}
	}

	c.mu.Lock()
	c.buf = append(c.buf, n)
	if len(c.buf) > c.cap {
		c.buf = c.buf[len(c.buf)-c.cap:]
	}
	c.mu.Unlock()

	switch level {
	case LevelError:
		c.l.Errorf(ctx, "notify: [%s] %s", code, message)
	case LevelWarning:
		c.l.Warnf(ctx, "notify: [%s] %s", code, message)
	default:
		c.l.Infof(ctx, "notify: [%s] %s", code, message)
	}
	return n
}

// Recent returns up to limit notifications, newest first. A
// non-positive limit returns everything buffered.
func (c *Center) Recent(limit int) []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.buf)
	if limit <= 0 || limit > n {
		limit = n
	}
	out := make([]Notification, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, c.buf[i])
	}
	return out
}

// Len reports how many notifications are currently buffered.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.buf)
}
