package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Upstream is a fake internship REST service for handler and gateway
// tests. Endpoints are registered per test, and every hit is counted so
// tests can assert that an invalid form never reached the service.
type Upstream struct {
	Server *httptest.Server
	router chi.Router

	mu     sync.Mutex
	counts map[string]int
}

// NewUpstream starts a fake service. Unregistered paths answer 404.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()
	u := &Upstream{
		router: chi.NewRouter(),
		counts: make(map[string]int),
	}
	u.Server = httptest.NewServer(u.router)
	t.Cleanup(u.Server.Close)
	return u
}

// URL returns the fake service's base URL.
func (u *Upstream) URL() string { return u.Server.URL }

// Gateway builds a gateway client pointed at the fake service.
func (u *Upstream) Gateway() *gateway.Client {
	return gateway.New(gateway.Config{BaseURL: u.Server.URL, Logger: zap.NewNop()})
}

// Handle registers an endpoint and counts its hits under "METHOD pattern".
func (u *Upstream) Handle(method, pattern string, fn http.HandlerFunc) {
	key := method + " " + pattern
	u.router.MethodFunc(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.counts[key]++
		u.mu.Unlock()
		fn(w, r)
	})
}

// Calls reports how many times an endpoint was hit.
func (u *Upstream) Calls(method, pattern string) int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.counts[method+" "+pattern]
}

// RespondEnvelope writes a 200 `{success:true, data}` body.
func RespondEnvelope(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "",
		"data":    data,
	})
}

// RespondJSON writes a 200 body without the envelope (the /getuser shape).
func RespondJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

// RespondError writes an error status with a `{success:false, message}` body.
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
