package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	mock_backend "github.com/orgball2608/story-studio/internal/backend/mocks"
	"github.com/orgball2608/story-studio/internal/highlights"
	"github.com/orgball2608/story-studio/internal/notification/notificationimpl"
	"github.com/orgball2608/story-studio/internal/store/posts"
	"github.com/orgball2608/story-studio/internal/store/stories"
	"github.com/orgball2608/story-studio/internal/unread"
	"github.com/orgball2608/story-studio/internal/unread/unreadimpl"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"
)

func TestModule_Validates(t *testing.T) {
	require.NoError(t, fx.ValidateApp(Module))
}

type connected bool

func (c connected) Connected() bool { return bool(c) }

func newTestServerOpts(t *testing.T) ServerOpts {
	t.Helper()
	ctrl := gomock.NewController(t)
	be := mock_backend.NewMockClient(ctrl)
	log := logger.NewDiscard()
	fc := clockwork.NewFakeClock()

	cfg := &config.Config{}
	cfg.Notification.ToastTTL = time.Second
	cfg.Unread.PollInterval = time.Hour

	dispatcher := notificationimpl.NewDispatcher(notificationimpl.DispatcherOpts{Logger: log})

	counts := unreadimpl.New(unreadimpl.Opts{
		Config:    cfg,
		Logger:    log,
		Clock:     fc,
		Backend:   be,
		Transport: dispatcher,
	})
	counts.SetUnreadMessages(120)
	counts.SetUnreadVisits(3)

	return ServerOpts{
		Config:  cfg,
		Logger:  log,
		Posts:   posts.NewMemory(posts.Seed(), log),
		Stories: stories.NewMemory(stories.Seed(), log),
		Unread:  counts,
		Center: notificationimpl.NewCenter(notificationimpl.CenterOpts{
			Config:    cfg,
			Logger:    log,
			Clock:     fc,
			Transport: dispatcher,
			Status:    connected(true),
		}),
		Highlights: highlights.NewManager(highlights.Opts{Backend: be, Clock: fc, Logger: log}),
	}
}

func TestDebugHandler_Healthz(t *testing.T) {
	opts := newTestServerOpts(t)
	rec := httptest.NewRecorder()

	newDebugHandler(opts, opts.Logger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestDebugHandler_State(t *testing.T) {
	opts := newTestServerOpts(t)
	rec := httptest.NewRecorder()

	newDebugHandler(opts, opts.Logger).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/state", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got stateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, len(opts.Posts.Get()), got.Posts)
	assert.Equal(t, len(opts.Stories.Get()), got.Stories)
	assert.True(t, got.Connected)
	assert.Zero(t, got.Toasts)
	assert.Equal(t, unread.Counts{Messages: 120, Visits: 3}, got.Unread)
	assert.Equal(t, "99+", got.Badges.Messages)
	assert.Equal(t, "3", got.Badges.Visits)
	assert.Equal(t, "", got.Badges.Notifications)
}

func TestDebugHandler_StateRejectsPost(t *testing.T) {
	opts := newTestServerOpts(t)
	rec := httptest.NewRecorder()

	newDebugHandler(opts, opts.Logger).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/debug/state", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
