package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskSuccess(t *testing.T) {
	var gotBody map[string]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "Start with a line follower.", "status": "ok"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "test-key", "")
	reply, err := c.Ask(context.Background(), "first robotics project?")
	require.NoError(t, err)

	assert.Equal(t, "Start with a line follower.", reply.Text)
	assert.Equal(t, "ok", reply.Status)
	// The raw query goes over the wire unmodified.
	assert.Equal(t, "first robotics project?", gotBody["query"])
	assert.Equal(t, "Bearer test-key", gotAuth)
}

func TestAskNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", "")
	_, err := c.Ask(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestAskEmptyPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "", "")
	_, err := c.Ask(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty payload")
}

func TestAskTransportFailure(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", "", "")
	_, err := c.Ask(context.Background(), "q")
	require.Error(t, err)
}

func TestLogQuery(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "drone nav", body["query"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewHTTPClient("http://unused", "", srv.URL)
	require.NoError(t, c.LogQuery(context.Background(), "drone nav"))
	assert.Equal(t, 1, calls)
}

func TestLogQueryWithoutSinkConfigured(t *testing.T) {
	c := NewHTTPClient("http://unused", "", "")
	require.NoError(t, c.LogQuery(context.Background(), "q"))
}
