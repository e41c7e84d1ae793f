package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Backend struct {
		BaseURL string        `env:"API_BASE_URL" env-default:"http://localhost:5050"`
		Token   string        `env:"API_TOKEN"`
		Timeout time.Duration `env:"API_TIMEOUT" env-default:"15s"`
	}
	Notification struct {
		Enabled  bool          `env:"NOTIFICATION_ENABLED" env-default:"true"`
		WsURL    string        `env:"NOTIFICATION_WS_URL"`
		ToastTTL time.Duration `env:"NOTIFICATION_TOAST_TTL" env-default:"10s"`
	}
	Unread struct {
		PollInterval time.Duration `env:"UNREAD_POLL_INTERVAL" env-default:"30s"`
	}
	Player struct {
		DefaultImageDuration time.Duration `env:"PLAYER_DEFAULT_IMAGE_DURATION" env-default:"5s"`
		MinImageDuration     time.Duration `env:"PLAYER_MIN_IMAGE_DURATION" env-default:"1500ms"`
	}
	Editor struct {
		ProfileFrame  float64 `env:"EDITOR_PROFILE_FRAME" env-default:"280"`
		CoverWidth    float64 `env:"EDITOR_COVER_WIDTH" env-default:"375"`
		CoverHeight   float64 `env:"EDITOR_COVER_HEIGHT" env-default:"200"`
		ExportDir     string  `env:"EDITOR_EXPORT_DIR"`
		ExportWorkers int     `env:"EDITOR_EXPORT_WORKERS" env-default:"2"`
		JpegQuality   int     `env:"EDITOR_JPEG_QUALITY" env-default:"90"`
		UploadStories bool    `env:"EDITOR_UPLOAD_STORIES" env-default:"false"`
	}
}

// WebSocketURL returns the notification socket address, derived from the API
// base URL when it is not configured explicitly.
func (c *Config) WebSocketURL() string {
	if c.Notification.WsURL != "" {
		return c.Notification.WsURL
	}
	base := c.Backend.BaseURL
	switch {
	case len(base) >= 5 && base[:5] == "https":
		return "wss" + base[5:]
	case len(base) >= 4 && base[:4] == "http":
		return "ws" + base[4:]
	}
	return base
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		var err error
		cfg, err = Read()
		if err != nil {
			help, _ := cleanenv.GetDescription(&Config{}, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}

// Read loads a fresh configuration from the environment.
func Read() (*Config, error) {
	c := &Config{}
	if err := cleanenv.ReadEnv(c); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}
	return c, nil
}
