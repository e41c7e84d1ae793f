package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/orgball2608/story-studio/internal/highlights"
	"github.com/orgball2608/story-studio/internal/notification/notificationimpl"
	"github.com/orgball2608/story-studio/internal/store/posts"
	"github.com/orgball2608/story-studio/internal/store/stories"
	"github.com/orgball2608/story-studio/internal/unread"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/formatter"
	"github.com/orgball2608/story-studio/pkg/logger"
	"go.uber.org/fx"
)

const recentStoryHours = 24

type ServerOpts struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Config     *config.Config
	Logger     logger.Logger
	Posts      posts.Store
	Stories    stories.Store
	Unread     unread.Client
	Center     *notificationimpl.Center
	Highlights *highlights.Manager
}

type badges struct {
	Notifications string `json:"notifications"`
	Messages      string `json:"messages"`
	Visits        string `json:"visits"`
}

type stateResponse struct {
	Posts         int           `json:"posts"`
	Stories       int           `json:"stories"`
	RecentStories int           `json:"recent_stories"`
	TotalViews    string        `json:"total_views"`
	Highlights    int           `json:"highlights"`
	Toasts        int           `json:"toasts"`
	Connected     bool          `json:"connected"`
	Unread        unread.Counts `json:"unread"`
	Badges        badges        `json:"badges"`
}

func runDebugServer(opts ServerOpts) {
	log := opts.Logger.WithComponent("DebugServer")
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Config.App.Port),
		Handler:           newDebugHandler(opts, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	opts.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", srv.Addr, err)
			}
			log.Info("Starting server", "addr", srv.Addr)
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server")
			return srv.Shutdown(ctx)
		},
	})
}

func newDebugHandler(opts ServerOpts, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		if _, err := w.Write([]byte("ok")); err != nil {
			log.Error("Failed to write response", "error", err)
		}
	})

	mux.HandleFunc("/debug/state", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		views := 0
		for _, s := range opts.Stories.Get() {
			views += s.ViewCount
		}
		counts := opts.Unread.Counts()

		resp := stateResponse{
			Posts:         len(opts.Posts.Get()),
			Stories:       len(opts.Stories.Get()),
			RecentStories: len(opts.Stories.Recent(recentStoryHours)),
			TotalViews:    formatter.FormatNumber(views),
			Highlights:    len(opts.Highlights.List()),
			Toasts:        len(opts.Center.List()),
			Connected:     opts.Center.Connected(),
			Unread:        counts,
			Badges: badges{
				Notifications: formatter.BadgeValue(counts.Notifications),
				Messages:      formatter.BadgeValue(counts.Messages),
				Visits:        formatter.BadgeValue(counts.Visits),
			},
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("Failed to write state", "error", err)
		}
	})

	return mux
}
