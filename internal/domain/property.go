package domain

// OfferType is the closed set of listing categories. Wire payloads carry an
// integer code; anything outside the known codes degrades to OfferUnknown.
type OfferType int

const (
	OfferUnknown OfferType = iota
	OfferSale
	OfferRent
	OfferSold
	OfferRented
)

func (t OfferType) String() string {
	switch t {
	case OfferSale:
		return "SALE"
	case OfferRent:
		return "RENT"
	case OfferSold:
		return "SOLD"
	case OfferRented:
		return "RENTED"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders the enum name, not the internal ordinal.
func (t OfferType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// Property is the internal representation of a listing. Pointer fields are
// genuinely optional: an absent ImageURL means the listing has no photo, and
// consumers must not render a placeholder for it.
type Property struct {
	ID           int64     `json:"id"`
	City         string    `json:"city"`
	AreaSqm      float64   `json:"area"`
	Price        float64   `json:"price"` // EUR
	Professional string    `json:"professional"`
	PropertyType string    `json:"propertyType"`
	Offer        OfferType `json:"offerType"`
	Bedrooms     *int      `json:"bedrooms,omitempty"`
	Rooms        *int      `json:"rooms,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
}
