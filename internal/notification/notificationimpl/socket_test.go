package notificationimpl

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/orgball2608/story-studio/internal/notification"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/orgball2608/story-studio/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocket_FeedsDispatcher(t *testing.T) {
	var authHeader atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader.Store(r.Header.Get("Authorization"))
		conn, _, _, err := ws.UpgradeHTTP(r, w)
		if err != nil {
			return
		}
		defer conn.Close()

		_ = wsutil.WriteServerMessage(conn, ws.OpText, []byte(messageFrame))
		for {
			if _, _, err := wsutil.ReadClientData(conn); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = srv.URL
	cfg.Backend.Token = "tok"
	cfg.Notification.Enabled = true

	d := newTestDispatcher()
	var received atomic.Int32
	d.OnNotification(notification.MessageType, func(notification.Event) { received.Add(1) })

	s := NewSocket(SocketOpts{Config: cfg, Logger: logger.NewDiscard(), Dispatcher: d})
	require.NoError(t, s.Start(context.Background()))

	assert.Eventually(t, func() bool { return received.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.True(t, s.Connected())
	assert.Equal(t, "Bearer tok", authHeader.Load())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.False(t, s.Connected())
}

func TestSocket_GivesUpAfterRetries(t *testing.T) {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = "http://127.0.0.1:1"
	cfg.Backend.Token = "tok"
	cfg.Notification.Enabled = true

	s := NewSocket(SocketOpts{Config: cfg, Logger: logger.NewDiscard(), Dispatcher: newTestDispatcher()})
	s.retryCfg = retry.Config{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1}

	var attempts atomic.Int32
	s.dial = func(ctx context.Context, url string) (net.Conn, error) {
		attempts.Add(1)
		return nil, assert.AnError
	}

	require.NoError(t, s.Start(context.Background()))
	assert.Eventually(t, func() bool { return attempts.Load() == 3 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
	assert.False(t, s.Connected())
}

func TestSocket_NoTokenStaysDown(t *testing.T) {
	cfg := &config.Config{}
	cfg.Notification.Enabled = true

	s := NewSocket(SocketOpts{Config: cfg, Logger: logger.NewDiscard(), Dispatcher: newTestDispatcher()})

	require.NoError(t, s.Start(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
	assert.False(t, s.Connected())
}

func TestSocket_WaitsBeforeRedialAfterDisconnect(t *testing.T) {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = "http://127.0.0.1:1"
	cfg.Backend.Token = "tok"
	cfg.Notification.Enabled = true

	s := NewSocket(SocketOpts{Config: cfg, Logger: logger.NewDiscard(), Dispatcher: newTestDispatcher()})
	s.retryCfg = retry.Config{MaxRetries: 2, InitialInterval: 300 * time.Millisecond, MaxInterval: time.Second, Multiplier: 2}

	var dials atomic.Int32
	s.dial = func(ctx context.Context, url string) (net.Conn, error) {
		dials.Add(1)
		client, server := net.Pipe()
		_ = server.Close()
		return client, nil
	}

	require.NoError(t, s.Start(context.Background()))
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), dials.Load())

	assert.Eventually(t, func() bool { return dials.Load() == 2 }, time.Second, 10*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(2), dials.Load(), "second redial backs off further")

	require.NoError(t, s.Stop(context.Background()))
	assert.False(t, s.Connected())
}
