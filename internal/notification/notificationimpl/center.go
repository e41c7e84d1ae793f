package notificationimpl

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-studio/internal/notification"
	"github.com/orgball2608/story-studio/internal/store"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/logger"
	"go.uber.org/fx"
)

// Toast is one notification shown to the user until it expires or is dismissed.
type Toast struct {
	ID      string
	Event   notification.Event
	ShownAt time.Time
}

// ConnectionStatus reports whether pushes can currently arrive.
type ConnectionStatus interface {
	Connected() bool
}

type CenterOpts struct {
	fx.In

	Config    *config.Config
	Logger    logger.Logger
	Clock     clockwork.Clock
	Transport notification.Transport
	Status    ConnectionStatus
}

// Center keeps the newest-first toast list fed by every notification type.
type Center struct {
	toasts    *store.Observable[[]Toast]
	clock     clockwork.Clock
	ttl       time.Duration
	transport notification.Transport
	status    ConnectionStatus
	logger    logger.Logger

	mu           sync.Mutex
	timers       map[string]clockwork.Timer
	unsubscribes []func()
}

func NewCenter(opts CenterOpts) *Center {
	return &Center{
		toasts:    store.NewObservable([]Toast{}),
		clock:     opts.Clock,
		ttl:       opts.Config.Notification.ToastTTL,
		transport: opts.Transport,
		status:    opts.Status,
		logger:    opts.Logger.WithComponent("NotificationCenter"),
		timers:    make(map[string]clockwork.Timer),
	}
}

// Start subscribes to every event type.
func (c *Center) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.unsubscribes) > 0 {
		return
	}
	for _, typ := range notification.Types() {
		c.unsubscribes = append(c.unsubscribes, c.transport.OnNotification(typ, func(ev notification.Event) {
			c.Add(ev)
		}))
	}
}

// Stop unsubscribes and cancels pending expiries. Toasts already shown stay.
func (c *Center) Stop() {
	c.mu.Lock()
	unsubscribes := c.unsubscribes
	c.unsubscribes = nil
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
}

func (c *Center) Add(ev notification.Event) Toast {
	toast := Toast{
		ID:      uuid.NewString(),
		Event:   ev,
		ShownAt: c.clock.Now(),
	}

	c.toasts.Update(func(current []Toast) ([]Toast, bool) {
		next := make([]Toast, 0, len(current)+1)
		next = append(next, toast)
		return append(next, current...), true
	})

	if c.ttl > 0 {
		// expire takes c.mu, so it cannot run before the timer is recorded.
		c.mu.Lock()
		c.timers[toast.ID] = c.clock.AfterFunc(c.ttl, func() { c.expire(toast.ID) })
		c.mu.Unlock()
	}

	c.logger.Debug("Toast added", "type", ev.Meta().Type, "actor", ev.Meta().Actor.Name)
	return toast
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	delete(c.timers, id)
	c.mu.Unlock()
	c.removeWhere(func(t Toast) bool { return t.ID == id })
}

// Remove dismisses the toast at index. Out of range indexes are ignored.
func (c *Center) Remove(index int) {
	removed := ""
	c.toasts.Update(func(current []Toast) ([]Toast, bool) {
		if index < 0 || index >= len(current) {
			return current, false
		}
		removed = current[index].ID
		next := make([]Toast, 0, len(current)-1)
		next = append(next, current[:index]...)
		return append(next, current[index+1:]...), true
	})
	if removed != "" {
		c.stopTimer(removed)
	}
}

func (c *Center) Clear() {
	c.mu.Lock()
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	c.toasts.Update(func(current []Toast) ([]Toast, bool) {
		return []Toast{}, len(current) > 0
	})
}

func (c *Center) List() []Toast {
	return c.toasts.Get()
}

func (c *Center) Subscribe(listener func()) func() {
	return c.toasts.Subscribe(listener)
}

func (c *Center) Connected() bool {
	return c.status != nil && c.status.Connected()
}

func (c *Center) removeWhere(match func(Toast) bool) {
	c.toasts.Update(func(current []Toast) ([]Toast, bool) {
		next := make([]Toast, 0, len(current))
		for _, t := range current {
			if !match(t) {
				next = append(next, t)
			}
		}
		return next, len(next) != len(current)
	})
}

func (c *Center) stopTimer(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
}
