package notificationimpl

import (
	"encoding/json"
	"sync"

	"github.com/orgball2608/story-studio/internal/notification"
	"github.com/orgball2608/story-studio/pkg/errors"
	"github.com/orgball2608/story-studio/pkg/logger"
	"go.uber.org/fx"
)

type subscription struct {
	id      uint64
	handler notification.Handler
}

// Frame is one server push: the event name and its JSON payload.
type Frame struct {
	Event notification.Type `json:"event"`
	Data  json.RawMessage   `json:"data"`
}

type DispatcherOpts struct {
	fx.In

	Logger logger.Logger
}

// Dispatcher keeps the per-event handler registry and fans decoded events out
// to it.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[notification.Type][]subscription
	nextID   uint64
	logger   logger.Logger
}

func NewDispatcher(opts DispatcherOpts) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[notification.Type][]subscription),
		logger:   opts.Logger.WithComponent("NotificationDispatcher"),
	}
}

var _ notification.Transport = (*Dispatcher)(nil)

func (d *Dispatcher) OnNotification(eventType notification.Type, handler notification.Handler) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.handlers[eventType] = append(d.handlers[eventType], subscription{id: id, handler: handler})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			subs := d.handlers[eventType]
			next := make([]subscription, 0, len(subs))
			for _, s := range subs {
				if s.id != id {
					next = append(next, s)
				}
			}
			if len(next) == 0 {
				delete(d.handlers, eventType)
				return
			}
			d.handlers[eventType] = next
		})
	}
}

// Dispatch decodes a raw socket frame and delivers it.
func (d *Dispatcher) Dispatch(raw []byte) error {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return errors.WrapWithCode(errors.ErrInvalidInput, "notification_frame", err.Error())
	}
	if frame.Event == "" {
		return errors.WrapWithCode(errors.ErrInvalidInput, "notification_frame", "missing event name")
	}
	return d.Publish(frame.Event, frame.Data)
}

// Publish validates data as an eventType payload and calls every handler
// registered for that type.
func (d *Dispatcher) Publish(eventType notification.Type, data []byte) error {
	ev, err := notification.Decode(eventType, data)
	if err != nil {
		d.logger.Warn("Dropping notification", "event", eventType, "error", err)
		return err
	}
	d.Deliver(ev)
	return nil
}

// Deliver hands an already decoded event to its subscribers.
func (d *Dispatcher) Deliver(ev notification.Event) {
	eventType := ev.Meta().Type

	d.mu.RLock()
	pending := d.handlers[eventType]
	d.mu.RUnlock()

	d.logger.Debug("Delivering notification", "event", eventType, "handlers", len(pending))
	for _, s := range pending {
		s.handler(ev)
	}
}
