package main

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	stub := newStubBackend(t)
	url := startTestServer(t, io.Discard, testEnv(stub.server.URL, nil))

	status, body := getJSON(t, url+"/health")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, true, body["openai_configured"])
	require.Equal(t, float64(0), body["active_sessions"])
	require.NotEmpty(t, body["timestamp"])

	postJSON(t, url+"/interrogate", firstMessagePayload("Alice"))

	_, body = getJSON(t, url+"/health")
	require.Equal(t, float64(1), body["active_sessions"])
}

func TestDebugSessions(t *testing.T) {
	stub := newStubBackend(t)
	url := startTestServer(t, io.Discard, testEnv(stub.server.URL, nil))

	postJSON(t, url+"/interrogate", firstMessagePayload("Alice"))
	postJSON(t, url+"/interrogate", firstMessagePayload("Bob"))

	status, body := getJSON(t, url+"/debug/sessions")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, float64(2), body["count"])

	sessions, ok := body["sessions"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, sessions, "Alice")
	require.Contains(t, sessions, "Bob")

	alice := sessions["Alice"].(map[string]any)
	require.Contains(t, alice, "scenario")
	require.Equal(t, float64(1), alice["turns"], "first message appends the detective turn")
}

func TestDebugResetSessions(t *testing.T) {
	stub := newStubBackend(t)
	url := startTestServer(t, io.Discard, testEnv(stub.server.URL, nil))

	postJSON(t, url+"/interrogate", firstMessagePayload("Alice"))
	postJSON(t, url+"/interrogate", firstMessagePayload("Bob"))

	t.Run("named reset removes only that session", func(t *testing.T) {
		status, body := postJSON(t, url+"/debug/reset-sessions", map[string]any{"playerName": "Alice"})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "Alice", body["playerName"])

		_, sessions := getJSON(t, url+"/debug/sessions")
		require.Equal(t, float64(1), sessions["count"])
	})

	t.Run("named reset of absent session is a 404", func(t *testing.T) {
		status, body := postJSON(t, url+"/debug/reset-sessions", map[string]any{"playerName": "Nobody"})
		require.Equal(t, http.StatusNotFound, status)
		require.NotEmpty(t, body["error"])
	})

	t.Run("reset without a name empties the store", func(t *testing.T) {
		status, body := postJSON(t, url+"/debug/reset-sessions", map[string]any{})
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, float64(1), body["cleared"])

		_, sessions := getJSON(t, url+"/debug/sessions")
		require.Equal(t, float64(0), sessions["count"])
	})
}
