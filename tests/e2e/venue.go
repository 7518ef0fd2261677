//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// RecordedRequest is one call the service made to the venue API.
type RecordedRequest struct {
	Method        string
	Path          string
	Authorization string
	// Reservation holds the "reservation" multipart field or the JSON body.
	Reservation map[string]any
	Action      string
}

// FakeVenueAPI stands in for the venue REST API: the add-ons catalog and the
// reservation endpoints.
type FakeVenueAPI struct {
	server *httptest.Server
	nextID atomic.Int64

	mu       sync.Mutex
	requests []RecordedRequest
	addOns   []map[string]any
	status   map[string]int
}

func DefaultCatalog() []map[string]any {
	return []map[string]any{
		{"id": 1, "name": "Seat Rate", "price": 2.5},
		{"id": 2, "name": "Regular Facility Rate", "price": 1500},
		{"id": 3, "name": "Saturday Facility Rate", "price": 2000},
		{"id": 4, "name": "Cleaning Small Guests Count", "price": 150},
		{"id": 5, "name": "Cleaning Large Guests Count", "price": 250},
		{"id": 6, "name": "Overtime Hourly Rate", "price": 150},
		{"id": "7", "name": "Projector", "price": 40},
	}
}

func NewFakeVenueAPI(t *testing.T) *FakeVenueAPI {
	f := &FakeVenueAPI{}
	f.Reset()
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeVenueAPI) URL() string {
	return f.server.URL
}

// Reset restores the default catalog and drops recorded requests.
func (f *FakeVenueAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
	f.addOns = DefaultCatalog()
	f.status = map[string]int{}
	f.nextID.Store(100)
}

func (f *FakeVenueAPI) SetCatalog(items []map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addOns = items
}

// FailWith makes every request whose method and path prefix match answer with code.
func (f *FakeVenueAPI) FailWith(method, pathPrefix string, code int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status[method+" "+pathPrefix] = code
}

func (f *FakeVenueAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// RequestsTo filters recorded requests by method and path prefix.
func (f *FakeVenueAPI) RequestsTo(method, pathPrefix string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range f.Requests() {
		if r.Method == method && strings.HasPrefix(r.Path, pathPrefix) {
			out = append(out, r)
		}
	}
	return out
}

func (f *FakeVenueAPI) serve(w http.ResponseWriter, r *http.Request) {
	rec := RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
	}

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/reservations":
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			_ = json.Unmarshal([]byte(r.FormValue("reservation")), &rec.Reservation)
		}
	case r.Method == http.MethodPut && strings.Contains(r.URL.Path, "/reservations/action/"):
		if err := r.ParseForm(); err == nil {
			rec.Action = r.PostForm.Get("action")
		}
	case r.Method == http.MethodPut:
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &rec.Reservation)
	}

	f.mu.Lock()
	f.requests = append(f.requests, rec)
	code, failing := f.failure(r.Method, r.URL.Path)
	addOns := f.addOns
	f.mu.Unlock()

	if failing {
		http.Error(w, http.StatusText(code), code)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/admin/addons":
		writeJSON(w, http.StatusOK, map[string]any{"content": addOns})
	case r.Method == http.MethodPost && r.URL.Path == "/reservations":
		body := rec.Reservation
		if body == nil {
			body = map[string]any{}
		}
		body["id"] = f.nextID.Add(1)
		writeJSON(w, http.StatusCreated, body)
	case r.Method == http.MethodPut && strings.Contains(r.URL.Path, "/reservations/action/"):
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/users/"):
		writeJSON(w, http.StatusOK, rec.Reservation)
	default:
		http.NotFound(w, r)
	}
}

func (f *FakeVenueAPI) failure(method, path string) (int, bool) {
	for key, code := range f.status {
		m, prefix, _ := strings.Cut(key, " ")
		if m == method && strings.HasPrefix(path, prefix) {
			return code, true
		}
	}
	return 0, false
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
