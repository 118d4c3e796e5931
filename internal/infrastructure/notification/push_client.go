package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// PushClient delivers event notifications to the push gateway. Delivery is
// best-effort: the caller logs a failure and moves on, there is no retry
// queue on this side.
type PushClient struct {
	httpClient *http.Client
	publishURL string
	apiKey     string
	logger     *slog.Logger
}

type PushClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewPushClient(cfg PushClientConfig, logger *slog.Logger) *PushClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PushClient{
		httpClient: &http.Client{Timeout: timeout},
		publishURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/") + "/v1/notifications",
		apiKey:     strings.TrimSpace(cfg.APIKey),
		logger:     logger,
	}
}

type pushRequest struct {
	EventID string `json:"event_id"`
}

func (c *PushClient) Send(ctx context.Context, eventID string) error {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return crerr.New("event id is required")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(pushRequest{EventID: eventID}); err != nil {
		return crerr.Wrap(err, "marshal push payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.publishURL, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return crerr.Wrap(err, "create push request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crerr.Wrap(err, "send push notification")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<14))

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.WarnContext(ctx, "push gateway rejected notification",
			"event_id", eventID,
			"status_code", resp.StatusCode,
		)
		return crerr.Newf("push gateway returned status %d", resp.StatusCode)
	}

	return nil
}
