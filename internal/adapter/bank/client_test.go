package bank

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"card-marketplace/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortenRetries swaps in near-zero intervals and restores on cleanup.
func shortenRetries(t *testing.T) {
	t.Helper()
	orig := transferRetryIntervals
	transferRetryIntervals = []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}
	t.Cleanup(func() { transferRetryIntervals = orig })
}

func TestClient_Transfer_Success(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transfers", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &http.Client{Timeout: time.Second}, zerolog.Nop())

	err := client.Transfer(context.Background(), "alice", domain.NewAmount(95))
	require.NoError(t, err)
	assert.Equal(t, "alice", gotBody["recipient"])
	assert.Equal(t, "95", gotBody["amount"])
}

func TestClient_Transfer_RetriesThenSucceeds(t *testing.T) {
	shortenRetries(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "try again", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &http.Client{Timeout: time.Second}, zerolog.Nop())

	err := client.Transfer(context.Background(), "alice", domain.NewAmount(95))
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_Transfer_Exhausted(t *testing.T) {
	shortenRetries(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &http.Client{Timeout: time.Second}, zerolog.Nop())

	err := client.Transfer(context.Background(), "alice", domain.NewAmount(95))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, int32(len(transferRetryIntervals)+1), calls.Load())
}

func TestClient_Transfer_ContextCanceledBetweenRetries(t *testing.T) {
	orig := transferRetryIntervals
	transferRetryIntervals = []time.Duration{time.Hour}
	t.Cleanup(func() { transferRetryIntervals = orig })

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(srv.URL, &http.Client{Timeout: time.Second}, zerolog.Nop())

	err := client.Transfer(ctx, "alice", domain.NewAmount(95))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
