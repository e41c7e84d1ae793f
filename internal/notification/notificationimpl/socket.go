package notificationimpl

import (
	"context"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/errors"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/orgball2608/story-studio/pkg/retry"
	"go.uber.org/fx"
)

type SocketOpts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Dispatcher *Dispatcher
}

// Socket keeps a WebSocket to the notification server open and feeds every
// text frame to the dispatcher.
type Socket struct {
	url        string
	token      string
	enabled    bool
	dispatcher *Dispatcher
	logger     logger.Logger
	retryCfg   retry.Config
	dial       func(ctx context.Context, url string) (net.Conn, error)

	connected atomic.Bool
	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewSocket(opts SocketOpts) *Socket {
	s := &Socket{
		url:        opts.Config.WebSocketURL(),
		token:      opts.Config.Backend.Token,
		enabled:    opts.Config.Notification.Enabled,
		dispatcher: opts.Dispatcher,
		logger:     opts.Logger.WithComponent("NotificationSocket"),
		retryCfg:   retry.ReconnectConfig(),
	}
	s.dial = s.dialWebSocket
	return s
}

func (s *Socket) dialWebSocket(ctx context.Context, url string) (net.Conn, error) {
	dialer := ws.Dialer{
		Header: ws.HandshakeHeaderHTTP(http.Header{
			"Authorization": []string{"Bearer " + s.token},
		}),
	}
	conn, _, _, err := dialer.Dial(ctx, url)
	return conn, err
}

func (s *Socket) Connected() bool {
	return s.connected.Load()
}

// Start connects in the background. Without a token there is nobody to
// notify, so the socket stays down.
func (s *Socket) Start(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Notification socket disabled")
		return nil
	}
	if s.token == "" {
		s.logger.Warn("No token available for notification socket")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(runCtx, s.done)
	return nil
}

func (s *Socket) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Socket) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	redial := retry.NewBackOff(s.retryCfg)
	first := true

	for ctx.Err() == nil {
		if !first {
			delay := redial.NextBackOff()
			s.logger.Debug("Waiting before reconnecting", "delay", delay.String())
			if !sleep(ctx, delay) {
				return
			}
		}
		first = false

		var conn net.Conn
		err := retry.Do(ctx, s.logger, "connect notification socket", func() error {
			c, err := s.dial(ctx, s.url)
			if err != nil {
				return err
			}
			conn = c
			return nil
		}, s.retryCfg)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Error("Giving up on notification socket", "error", err)
			}
			return
		}

		s.connected.Store(true)
		s.logger.Info("Notification socket connected", "url", s.url)

		connectedAt := time.Now()
		err = s.readLoop(ctx, conn)
		if time.Since(connectedAt) >= s.retryCfg.MaxInterval {
			redial.Reset()
		}

		s.connected.Store(false)
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn("Notification socket disconnected", "error", err)
	}
}

// sleep waits d or until ctx is done, reporting whether the full wait elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func (s *Socket) readLoop(ctx context.Context, conn net.Conn) error {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer func() {
		stop()
		_ = conn.Close()
	}()

	for {
		data, op, err := wsutil.ReadServerData(conn)
		if err != nil {
			return errors.Wrap(err, "read frame")
		}
		if op != ws.OpText {
			continue
		}
		if err := s.dispatcher.Dispatch(data); err != nil {
			s.logger.Debug("Ignoring malformed frame", "error", err)
		}
	}
}
