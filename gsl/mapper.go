package gsl

import (
	"strings"

	"github.com/yourorg/listings-app/internal/domain"
)

// offerCodes is the fixed wire-code table. Codes outside it, including 0 and
// negatives, map to OfferUnknown.
var offerCodes = map[int]domain.OfferType{
	1: domain.OfferSale,
	2: domain.OfferRent,
	3: domain.OfferSold,
	4: domain.OfferRented,
}

// MapListing converts one wire record into the domain model. The mapping is
// total: it has no failure mode for any input.
func MapListing(w Listing) domain.Property {
	return domain.Property{
		ID:           w.ID,
		City:         w.City,
		AreaSqm:      w.Area,
		Price:        w.Price,
		Professional: w.Professional,
		PropertyType: w.PropertyType,
		Offer:        offerCodes[w.OfferType],
		Bedrooms:     copyInt(w.Bedrooms),
		Rooms:        copyInt(w.Rooms),
		ImageURL:     imageURL(w.URL),
	}
}

// MapListingPage maps each element independently, preserving order.
// TotalCount is intentionally not carried into the domain model.
func MapListingPage(p ListingPage) []domain.Property {
	out := make([]domain.Property, 0, len(p.Items))
	for _, item := range p.Items {
		out = append(out, MapListing(item))
	}
	return out
}

// imageURL normalizes the optional photo field: blank strings count as
// absent, so consumers never render a placeholder for them.
func imageURL(u *string) *string {
	if u == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*u)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
