// Package queue provides enqueue collaborators that hand playback requests to a
// downstream queue service.
package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"moodplay/internal/logger"
	"moodplay/pkg/moodtypes"
)

// DefaultTimeout bounds a single enqueue call.
const DefaultTimeout = 10 * time.Second

// maxErrorBody caps how much of an error response body is read.
const maxErrorBody = 4096

// Payload is the JSON body posted to the queue service.
type Payload struct {
	Interaction moodtypes.Interaction     `json:"interaction"`
	Request     moodtypes.PlaybackRequest `json:"request"`
}

// StatusError reports a non-2xx reply from the queue service.
// Message carries the service's own explanation when it sent one.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("queue service returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// HTTPEnqueuer posts playback requests to a queue service endpoint.
type HTTPEnqueuer struct {
	url     string
	token   string
	timeout time.Duration
	client  *http.Client
}

// NewHTTPEnqueuer creates an enqueuer for url. A zero timeout means DefaultTimeout.
func NewHTTPEnqueuer(url string, token string, timeout time.Duration) (*HTTPEnqueuer, error) {
	if url == "" {
		return nil, fmt.Errorf("queue URL is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPEnqueuer{
		url:     url,
		token:   token,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Enqueue posts the request and waits for the service to accept it.
func (h *HTTPEnqueuer) Enqueue(ctx context.Context, interaction moodtypes.Interaction, request moodtypes.PlaybackRequest) error {
	body, err := json.Marshal(Payload{Interaction: interaction, Request: request})
	if err != nil {
		return fmt.Errorf("failed to encode playback request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create queue request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.token)
	}

	logger.Debug("Posting playback request",
		"url", h.url,
		"interaction", interaction.ID,
		"query", request.Query)

	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Error("Failed to reach queue service", "error", err, "url", h.url)
		return fmt.Errorf("failed to reach queue service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error on close
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.Debug("Queue service accepted request", "status_code", resp.StatusCode, "interaction", interaction.ID)
		return nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	statusErr := &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	logger.Warn("Queue service rejected request", "status_code", resp.StatusCode, "error", statusErr)
	return statusErr
}

// errorMessage extracts {"message": "..."} or {"error": "..."} from a response body.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return strings.TrimSpace(body.Message)
	}
	return strings.TrimSpace(body.Error)
}
