package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/yourorg/listings-app/gsl"
	"github.com/yourorg/listings-app/internal/repo"
)

func newGateway(upstreamURL string) http.Handler {
	client := gsl.NewClient(gsl.WithBaseURL(upstreamURL), gsl.WithRequestsPerSecond(1000))
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	RegisterListings(r, ListingsDeps{Repo: repo.New(client, log)})
	return r
}

func doGet(t *testing.T, h http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v: %s", err, rec.Body.String())
	}
	return rec, body
}

func TestListingsEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"id":1,"city":"Paris","area":120.0,"price":850000.0,
			 "professional":"John Doe","propertyType":"Apartment","offerType":1},
			{"id":2,"city":"Lille","area":38.0,"price":700.0,
			 "professional":"GSL","propertyType":"Studio","offerType":2,
			 "url":"https://images.example.com/p/2.jpg"}
		],"totalCount":2}`))
	}))
	defer upstream.Close()

	rec, body := doGet(t, newGateway(upstream.URL), "/listings")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["ok"] != true || body["count"] != float64(2) {
		t.Errorf("unexpected envelope: %v", body)
	}
	listings := body["listings"].([]any)
	first := listings[0].(map[string]any)
	if first["offerType"] != "SALE" {
		t.Errorf("offer type should render as its name, got %v", first["offerType"])
	}
	if _, present := first["imageUrl"]; present {
		t.Error("absent image must not appear in the payload")
	}
	second := listings[1].(map[string]any)
	if second["imageUrl"] != "https://images.example.com/p/2.jpg" {
		t.Errorf("unexpected imageUrl: %v", second["imageUrl"])
	}
}

func TestListingDetailEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/listings/7.json" {
			t.Errorf("unexpected upstream path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id":7,"city":"Nice","area":54,"price":420000,
			"professional":"GSL","propertyType":"Apartment","offerType":3}`))
	}))
	defer upstream.Close()

	rec, body := doGet(t, newGateway(upstream.URL), "/listings/7")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, body)
	}
	listing := body["listing"].(map[string]any)
	if listing["id"] != float64(7) || listing["offerType"] != "SOLD" {
		t.Errorf("unexpected listing: %v", listing)
	}
}

func TestListingDetailInvalidID(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called for an invalid id")
	}))
	defer upstream.Close()

	rec, body := doGet(t, newGateway(upstream.URL), "/listings/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body["error"] != "invalid_id" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestListingDetailUpstream404PassesThrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer upstream.Close()

	rec, body := doGet(t, newGateway(upstream.URL), "/listings/9999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body["error"] != "not_found" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestListingsUpstreamErrorMapsTo502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	rec, body := doGet(t, newGateway(upstream.URL), "/listings")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if body["error"] != "upstream_error" {
		t.Errorf("unexpected error body: %v", body)
	}
}

func TestListingsUpstreamUnreachableMapsTo504(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	rec, body := doGet(t, newGateway(upstream.URL), "/listings")
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", rec.Code)
	}
	if body["error"] != "upstream_unreachable" {
		t.Errorf("unexpected error body: %v", body)
	}
}
