package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging interface used by the client
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client posts appointment events to an external notification webhook.
// Delivery is best effort: the booking flow fires it after commit and only
// logs failures.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a notification webhook client
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// AppointmentCreated posts the event to the webhook
func (c *Client) AppointmentCreated(ctx context.Context, event *AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/notifications/appointments", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	c.log.Info("AppointmentCreated: event for booking %d delivered", event.BookingID)
	return nil
}

// Noop is a notifier that drops every event. Used when no webhook URL is
// configured.
type Noop struct{}

// AppointmentCreated discards the event
func (Noop) AppointmentCreated(ctx context.Context, event *AppointmentEvent) error {
	return nil
}
