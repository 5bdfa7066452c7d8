package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotify(t *testing.T) {
	received := make(chan map[string]string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		payload := map[string]string{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		received <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	webhook := NewWebhook(server.URL)
	require.NoError(t, webhook.Notify("New inquiry received", "details"))

	payload := <-received
	assert.Equal(t, "New inquiry received", payload["title"])
	assert.Equal(t, "details", payload["content"])
}

func TestWebhookNotifyErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	webhook := NewWebhook(server.URL)
	err := webhook.Notify("title", "content")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestWebhookUnconfiguredIsNoOp(t *testing.T) {
	webhook := NewWebhook("")
	require.NoError(t, webhook.Notify("title", "content"))
}
