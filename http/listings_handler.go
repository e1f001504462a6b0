// Package httpapi is a read-only gateway over the listings repository. It is
// presentation plumbing: it calls into the core and renders whatever comes
// back, adding nothing of its own.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/yourorg/listings-app/gsl"
	"github.com/yourorg/listings-app/internal/repo"
)

type ListingsDeps struct {
	Repo *repo.Repository
}

func RegisterListings(r chi.Router, d ListingsDeps) {
	r.Get("/listings", func(w http.ResponseWriter, req *http.Request) {
		props, err := d.Repo.Properties(req.Context())
		if err != nil {
			writeUpstreamError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "count": len(props), "listings": props})
	})

	r.Get("/listings/{listingID}", func(w http.ResponseWriter, req *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(req, "listingID"), 10, 64)
		if err != nil {
			render.Status(req, http.StatusBadRequest)
			render.JSON(w, req, map[string]any{"error": "invalid_id", "detail": "listing id must be an integer"})
			return
		}
		prop, err := d.Repo.PropertyDetails(req.Context(), id)
		if err != nil {
			writeUpstreamError(w, req, err)
			return
		}
		render.JSON(w, req, map[string]any{"ok": true, "listing": prop})
	})
}

// writeUpstreamError translates the client's failure kinds into gateway
// statuses: upstream 404 passes through, other upstream responses map to
// 502, and transport failures to 504.
func writeUpstreamError(w http.ResponseWriter, req *http.Request, err error) {
	var (
		httpErr   *gsl.HTTPError
		transport *gsl.TransportError
	)
	switch {
	case errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound:
		render.Status(req, http.StatusNotFound)
		render.JSON(w, req, map[string]any{"error": "not_found"})
	case errors.As(err, &transport):
		render.Status(req, http.StatusGatewayTimeout)
		render.JSON(w, req, map[string]any{"error": "upstream_unreachable", "detail": err.Error()})
	default:
		render.Status(req, http.StatusBadGateway)
		render.JSON(w, req, map[string]any{"error": "upstream_error", "detail": err.Error()})
	}
}
