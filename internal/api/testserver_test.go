package api

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestServer starts an HTTP server bound to IPv4-only loopback so tests work
// inside restricted sandboxes that forbid IPv6 listeners.
func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("unable to start test server: %v", err)
	}

	server := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	server.Start()
	t.Cleanup(server.Close)
	return server
}

// newTestClient creates a client pointed at the test server.
func newTestClient(t *testing.T, server *httptest.Server, opts ...Option) *Client {
	t.Helper()

	client, err := NewClient(server.URL, opts...)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

// writeEnvelope writes a success envelope with the given data payload.
func writeEnvelope(w http.ResponseWriter, data any) {
	writeListEnvelope(w, data, 0, 0, 0, 0)
}

// writeListEnvelope writes a success envelope with pagination fields.
func writeListEnvelope(w http.ResponseWriter, data any, total, page, limit, totalPages int) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success":    true,
		"data":       data,
		"total":      total,
		"page":       page,
		"limit":      limit,
		"totalPages": totalPages,
	})
}

// writeError writes an error body with the given status and message.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
