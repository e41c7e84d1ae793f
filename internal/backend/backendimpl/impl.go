package backendimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/orgball2608/story-studio/internal/backend"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/errors"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/orgball2608/story-studio/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// HTTPClient talks to the REST API with a bearer token.
type HTTPClient struct {
	baseURL  string
	token    string
	http     *http.Client
	logger   logger.Logger
	retryCfg retry.Config
}

func New(opts Opts) *HTTPClient {
	return &HTTPClient{
		baseURL:  strings.TrimRight(opts.Config.Backend.BaseURL, "/"),
		token:    opts.Config.Backend.Token,
		http:     &http.Client{Timeout: opts.Config.Backend.Timeout},
		logger:   opts.Logger.WithComponent("Backend"),
		retryCfg: retry.DefaultConfig(),
	}
}

var _ backend.Client = (*HTTPClient)(nil)

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req and decodes a JSON response into out. Non-2xx responses are
// mapped onto the shared error sentinels using the server's detail message.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WrapWithCode(errors.ErrServiceUnavailable, "transport", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.FromHTTPStatus(resp.StatusCode, readDetail(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

// getJSON retries transient failures; client errors stop immediately.
func (c *HTTPClient) getJSON(ctx context.Context, operation, path string, out any) error {
	return retry.Do(ctx, c.logger, operation, func() error {
		req, err := c.newRequest(ctx, http.MethodGet, path, nil)
		if err != nil {
			return retry.Permanent(err)
		}
		err = c.do(req, out)
		if err != nil && !errors.IsRetryable(err) {
			return retry.Permanent(err)
		}
		return err
	}, c.retryCfg)
}

func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if len(payload.Detail) == 0 {
		return string(raw)
	}

	var text string
	if err := json.Unmarshal(payload.Detail, &text); err == nil {
		return text
	}
	// validation errors come back as a list
	return string(payload.Detail)
}

func queryPath(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return fmt.Sprintf("%s?%s", path, values.Encode())
}
