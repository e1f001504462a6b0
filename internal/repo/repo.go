// Package repo is the sole interface the rest of the system depends on for
// listing data. It orchestrates the GSL client and the wire→domain mapper;
// every failure surfaces as an error value, never as a partial result.
package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yourorg/listings-app/gsl"
	"github.com/yourorg/listings-app/internal/domain"
)

type Repository struct {
	client *gsl.Client
	log    *slog.Logger
}

func New(client *gsl.Client, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.Default()
	}
	return &Repository{client: client, log: log.With("component", "repo")}
}

// Properties fetches the listings page and maps it into domain records.
func (r *Repository) Properties(ctx context.Context) ([]domain.Property, error) {
	page, err := r.client.FetchListings(ctx)
	if err != nil {
		r.logFailure("fetch listings failed", err)
		return nil, err
	}
	props := gsl.MapListingPage(*page)
	r.log.Debug("fetched listings", "count", len(props), "total_count", page.TotalCount)
	return props, nil
}

// PropertyDetails fetches one listing by id and maps it.
func (r *Repository) PropertyDetails(ctx context.Context, id int64) (domain.Property, error) {
	listing, err := r.client.FetchListing(ctx, id)
	if err != nil {
		r.logFailure("fetch listing failed", err, "listing_id", id)
		return domain.Property{}, err
	}
	prop := gsl.MapListing(*listing)
	r.log.Debug("fetched listing", "listing_id", id)
	return prop, nil
}

// logFailure records the failure kind alongside the message. Callers only
// ever see the error value itself; the kind is for operators.
func (r *Repository) logFailure(msg string, err error, args ...any) {
	var (
		transport *gsl.TransportError
		httpErr   *gsl.HTTPError
		empty     *gsl.EmptyBodyError
	)
	kind := "unknown"
	switch {
	case errors.As(err, &transport):
		kind = "transport"
	case errors.As(err, &httpErr):
		kind = "http"
	case errors.As(err, &empty):
		kind = "empty_body"
	}
	args = append(args, "kind", kind, "error", err)
	r.log.Warn(msg, args...)
}
