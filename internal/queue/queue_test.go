package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodplay/internal/logger"
	"moodplay/pkg/moodtypes"
)

func TestNewHTTPEnqueuer(t *testing.T) {
	_, err := NewHTTPEnqueuer("", "", 0)
	require.Error(t, err)

	h, err := NewHTTPEnqueuer("http://queue.local/enqueue", "", 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, h.timeout)
}

func TestHTTPEnqueuer_Enqueue(t *testing.T) {
	var received Payload
	var auth, contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		auth = r.Header.Get("Authorization")
		contentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	h, err := NewHTTPEnqueuer(server.URL, "secret", time.Second)
	require.NoError(t, err)

	limit := 5
	req := moodtypes.PlaybackRequest{Query: "party dance music mix", AddToFrontOfQueue: true, PlaylistLimit: &limit}
	interaction := moodtypes.Interaction{ID: "i-1", Transport: "discord", GuildID: "g1"}
	require.NoError(t, h.Enqueue(context.Background(), interaction, req))

	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, interaction.ID, received.Interaction.ID)
	assert.Equal(t, "g1", received.Interaction.GuildID)
	assert.Equal(t, req, received.Request)
}

func TestHTTPEnqueuer_PayloadOmitsAbsentLimit(t *testing.T) {
	var raw map[string]map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h, err := NewHTTPEnqueuer(server.URL, "", time.Second)
	require.NoError(t, err)
	require.NoError(t, h.Enqueue(context.Background(), moodtypes.Interaction{ID: "x"}, moodtypes.PlaybackRequest{Query: "q"}))

	_, hasLimit := raw["request"]["playlistLimit"]
	assert.False(t, hasLimit)
	assert.Equal(t, false, raw["request"]["shouldSplitChapters"])
	assert.Equal(t, false, raw["request"]["skipCurrentTrack"])
}

func TestHTTPEnqueuer_StatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "message field",
			status:   http.StatusConflict,
			body:     `{"message": "the queue is full"}`,
			expected: "the queue is full",
		},
		{
			name:     "error field",
			status:   http.StatusBadRequest,
			body:     `{"error": "no songs found"}`,
			expected: "no songs found",
		},
		{
			name:     "plain body",
			status:   http.StatusInternalServerError,
			body:     "boom",
			expected: "queue service returned 500 Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			h, err := NewHTTPEnqueuer(server.URL, "", time.Second)
			require.NoError(t, err)

			err = h.Enqueue(context.Background(), moodtypes.Interaction{}, moodtypes.PlaybackRequest{Query: "q"})
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			assert.Equal(t, tt.status, statusErr.StatusCode)
		})
	}
}

func TestHTTPEnqueuer_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	h, err := NewHTTPEnqueuer(server.URL, "", time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = h.Enqueue(ctx, moodtypes.Interaction{}, moodtypes.PlaybackRequest{Query: "q"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogEnqueuer(t *testing.T) {
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	defer logger.SetOutput(os.Stderr)

	limit := 3
	err := NewLogEnqueuer().Enqueue(context.Background(),
		moodtypes.Interaction{ID: "i-9", Transport: "shell"},
		moodtypes.PlaybackRequest{Query: "smooth jazz music", PlaylistLimit: &limit})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "dry run")
	assert.Contains(t, out, "smooth jazz music")
	assert.Contains(t, out, "limit=3")
}
