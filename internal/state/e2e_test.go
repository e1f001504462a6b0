package state

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yourorg/listings-app/gsl"
	"github.com/yourorg/listings-app/internal/domain"
	"github.com/yourorg/listings-app/internal/repo"
)

// These wire a real client and repository against a stub API, covering the
// full pipeline from HTTP response to observed screen state.

func newTestRepo(url string) *repo.Repository {
	client := gsl.NewClient(gsl.WithBaseURL(url), gsl.WithRequestsPerSecond(1000))
	return repo.New(client, discardLogger())
}

func TestListPipelineEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/listings.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"items":[{"id":1,"city":"Paris","area":120.0,"price":850000.0,
			"professional":"John Doe","propertyType":"Apartment","offerType":1}],"totalCount":1}`))
	}))
	defer srv.Close()

	h := NewListHolder(newTestRepo(srv.URL), discardLogger())
	defer h.Close()

	st := nextListState(t, h.Updates())
	if !st.Loading {
		t.Fatal("expected loading snapshot first")
	}
	st = nextListState(t, h.Updates())
	if st.Loading || st.Err != "" {
		t.Fatalf("unexpected final state: %+v", st)
	}
	if len(st.Properties) != 1 {
		t.Fatalf("expected one property, got %d", len(st.Properties))
	}
	p := st.Properties[0]
	if p.ID != 1 || p.City != "Paris" || p.Offer != domain.OfferSale {
		t.Errorf("unexpected mapped property: %+v", p)
	}
	if p.AreaSqm != 120.0 || p.Price != 850000.0 || p.Professional != "John Doe" {
		t.Errorf("unexpected mapped property: %+v", p)
	}
}

func TestDetailPipelineHTTP500EndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/listings/7.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := NewDetailHolder(newTestRepo(srv.URL), discardLogger())
	defer h.Close()
	h.Load(7)

	nextDetailState(t, h.Updates()) // loading
	st := nextDetailState(t, h.Updates())
	if st.Loading {
		t.Error("expected loading cleared")
	}
	if st.Property != nil {
		t.Errorf("expected no property, got %+v", st.Property)
	}
	if st.Err != "HTTP 500: Internal Server Error" {
		t.Errorf("unexpected error message %q", st.Err)
	}
}
