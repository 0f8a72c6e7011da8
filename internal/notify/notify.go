// Package notify keeps the transient toast notifications shown after each
// calendar gesture.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelDanger  Level = "danger"
)

// Toast is a single notification.
type Toast struct {
	ID        string
	Level     Level
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Config struct {
	Timeout    time.Duration
	MaxVisible int
}

func DefaultConfig() Config {
	return Config{Timeout: 3000 * time.Millisecond, MaxVisible: 5}
}

// Center holds the visible toasts. It is safe for concurrent use.
type Center struct {
	mu     sync.Mutex
	cfg    Config
	toasts []Toast
	logger *slog.Logger
	now    func() time.Time
}

// NewCenter creates a Center. A nil logger discards log output.
func NewCenter(cfg Config, logger *slog.Logger) *Center {
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = DefaultConfig().MaxVisible
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Center{cfg: cfg, logger: logger, now: time.Now}
}

// Notify pushes a toast, evicting the oldest one when the queue is full.
func (c *Center) Notify(ctx context.Context, level Level, message string) {
	c.Push(ctx, level, message)
}

// Push is Notify returning the created toast.
func (c *Center) Push(ctx context.Context, level Level, message string) Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.pruneLocked(now)
	if len(c.toasts) >= c.cfg.MaxVisible {
		c.toasts = c.toasts[1:]
	}
	t := Toast{
		ID:        "notification-" + uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.cfg.Timeout),
	}
	c.toasts = append(c.toasts, t)

	if level == LevelDanger {
		c.logger.ErrorContext(ctx, "notification", "id", t.ID, "level", level, "message", message)
	} else {
		c.logger.InfoContext(ctx, "notification", "id", t.ID, "level", level, "message", message)
	}
	return t
}

// Active returns the toasts that have not expired at now.
func (c *Center) Active(now time.Time) []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pruneLocked(now)
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Dismiss removes a toast before it expires.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, t := range c.toasts {
		if t.ID == id {
			c.toasts = append(c.toasts[:i], c.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// Drain returns every queued toast regardless of expiry and empties the
// queue. Used by one-shot commands that print outcomes on exit.
func (c *Center) Drain() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.toasts
	c.toasts = nil
	return out
}

func (c *Center) pruneLocked(now time.Time) {
	kept := c.toasts[:0]
	for _, t := range c.toasts {
		if now.Before(t.ExpiresAt) {
			kept = append(kept, t)
		}
	}
	c.toasts = kept
}
