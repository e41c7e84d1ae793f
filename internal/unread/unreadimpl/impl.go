package unreadimpl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-studio/internal/backend"
	"github.com/orgball2608/story-studio/internal/notification"
	"github.com/orgball2608/story-studio/internal/store"
	"github.com/orgball2608/story-studio/internal/unread"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/logger"
	"go.uber.org/fx"
)

const refreshTimeout = 20 * time.Second

type Opts struct {
	fx.In

	Config    *config.Config
	Logger    logger.Logger
	Clock     clockwork.Clock
	Backend   backend.Client
	Transport notification.Transport
}

type UnreadImpl struct {
	counts       *store.Observable[unread.Counts]
	backend      backend.Client
	transport    notification.Transport
	clock        clockwork.Clock
	pollInterval time.Duration
	logger       logger.Logger

	mu           sync.Mutex
	scheduler    gocron.Scheduler
	cancel       context.CancelFunc
	unsubscribes []func()
}

func New(opts Opts) *UnreadImpl {
	return &UnreadImpl{
		counts:       store.NewObservable(unread.Counts{}),
		backend:      opts.Backend,
		transport:    opts.Transport,
		clock:        opts.Clock,
		pollInterval: opts.Config.Unread.PollInterval,
		logger:       opts.Logger.WithComponent("Unread"),
	}
}

var _ unread.Client = (*UnreadImpl)(nil)

func (u *UnreadImpl) Counts() unread.Counts {
	return u.counts.Get()
}

func (u *UnreadImpl) Subscribe(listener func()) func() {
	return u.counts.Subscribe(listener)
}

func (u *UnreadImpl) update(fn func(c *unread.Counts)) {
	u.counts.Update(func(current unread.Counts) (unread.Counts, bool) {
		next := current
		fn(&next)
		return next, next != current
	})
}

func (u *UnreadImpl) MarkNotificationsRead() {
	u.update(func(c *unread.Counts) { c.Notifications = 0 })
}

func (u *UnreadImpl) MarkMessagesRead() {
	u.update(func(c *unread.Counts) { c.Messages = 0 })
}

func (u *UnreadImpl) MarkVisitsRead() {
	u.update(func(c *unread.Counts) { c.Visits = 0 })
}

func (u *UnreadImpl) SetUnreadMessages(n int) {
	u.update(func(c *unread.Counts) { c.Messages = max(n, 0) })
}

func (u *UnreadImpl) SetUnreadVisits(n int) {
	u.update(func(c *unread.Counts) { c.Visits = max(n, 0) })
}

// Refresh polls every counter. A failing counter keeps its previous value;
// the first failure is returned after the others are applied.
func (u *UnreadImpl) Refresh(ctx context.Context) error {
	type fetch struct {
		name  string
		get   func(context.Context) (int, error)
		apply func(c *unread.Counts, n int)
	}
	fetches := []fetch{
		{"notifications", u.backend.UnreadNotificationsCount, func(c *unread.Counts, n int) { c.Notifications = max(n, 0) }},
		{"messages", u.backend.UnreadMessagesCount, func(c *unread.Counts, n int) { c.Messages = max(n, 0) }},
		{"visits", u.backend.UnreadVisitsCount, func(c *unread.Counts, n int) { c.Visits = max(n, 0) }},
	}

	var firstErr error
	for _, f := range fetches {
		n, err := f.get(ctx)
		if err != nil {
			u.logger.Error("Failed to refresh unread counter", "counter", f.name, "error", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("refresh %s: %w", f.name, err)
			}
			continue
		}
		u.update(func(c *unread.Counts) { f.apply(c, n) })
	}
	return firstErr
}

func (u *UnreadImpl) onPush(ev notification.Event) {
	switch ev.Meta().Type {
	case notification.MessageType:
		u.update(func(c *unread.Counts) { c.Messages++ })
	case notification.ProfileVisitType:
		u.update(func(c *unread.Counts) { c.Visits++ })
	default:
		u.update(func(c *unread.Counts) { c.Notifications++ })
	}
}

// Start subscribes to pushes and polls the backend right away and then
// every poll interval.
func (u *UnreadImpl) Start(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.scheduler != nil {
		return nil
	}

	scheduler, err := gocron.NewScheduler(gocron.WithClock(u.clock))
	if err != nil {
		return fmt.Errorf("failed to create unread scheduler: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())

	_, err = scheduler.NewJob(
		gocron.DurationJob(u.pollInterval),
		gocron.NewTask(func() {
			if runCtx.Err() != nil {
				return
			}
			taskCtx, taskCancel := context.WithTimeout(runCtx, refreshTimeout)
			defer taskCancel()
			_ = u.Refresh(taskCtx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = scheduler.Shutdown()
		return fmt.Errorf("failed to schedule unread polling: %w", err)
	}

	for _, typ := range notification.Types() {
		u.unsubscribes = append(u.unsubscribes, u.transport.OnNotification(typ, u.onPush))
	}

	scheduler.Start()
	u.scheduler = scheduler
	u.cancel = cancel
	u.logger.Info("Unread polling started", "interval", u.pollInterval.String())
	return nil
}

func (u *UnreadImpl) Stop() error {
	u.mu.Lock()
	scheduler, cancel, unsubscribes := u.scheduler, u.cancel, u.unsubscribes
	u.scheduler, u.cancel, u.unsubscribes = nil, nil, nil
	u.mu.Unlock()

	if scheduler == nil {
		return nil
	}

	for _, unsubscribe := range unsubscribes {
		unsubscribe()
	}
	cancel()

	if err := scheduler.Shutdown(); err != nil {
		u.logger.Error("Failed to shut down unread scheduler", "error", err)
		return err
	}
	u.logger.Info("Unread polling stopped")
	return nil
}
