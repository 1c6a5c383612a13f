package clients

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer s3cret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(time.Second)
	headers := http.Header{}
	headers.Set("Authorization", "Bearer s3cret")

	status, body, err := client.Get(context.Background(), srv.URL, headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true}`, string(body))
}

func TestHTTPClient_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "254700000001", payload["phone"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"x"}`))
	}))
	defer srv.Close()

	status, body, err := NewHTTPClient(0).PostJSON(context.Background(), srv.URL, nil, map[string]string{"phone": "254700000001"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.JSONEq(t, `{"id":"x"}`, string(body))
}

func TestHTTPClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		assert.Equal(t, "raw", string(data))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	status, _, err := NewHTTPClient(time.Second).Post(context.Background(), srv.URL, nil, strings.NewReader("raw"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
}

func TestHTTPClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, _, err := NewHTTPClient(20*time.Millisecond).Get(context.Background(), srv.URL, nil)
	assert.Error(t, err)
}

func TestHTTPClient_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewHTTPClient(time.Second).Get(ctx, "http://127.0.0.1:1", nil)
	assert.ErrorIs(t, err, context.Canceled)
}
