package gsl

// Listing mirrors one property record exactly as the GSL API transmits it.
// The offer type is a raw integer code on the wire; translation into the
// domain enum happens in the mapper.
type Listing struct {
	ID           int64   `json:"id"`
	Bedrooms     *int    `json:"bedrooms,omitempty"`
	City         string  `json:"city"`
	Area         float64 `json:"area"`
	URL          *string `json:"url,omitempty"` // image URL, absent for some listings
	Price        float64 `json:"price"`
	Professional string  `json:"professional"`
	PropertyType string  `json:"propertyType"`
	OfferType    int     `json:"offerType"` // 0 means unknown
	Rooms        *int    `json:"rooms,omitempty"`
}

// ListingPage is the list envelope. TotalCount may exceed len(Items); the
// API reserves it for pagination, which this client does not use.
type ListingPage struct {
	Items      []Listing `json:"items"`
	TotalCount int       `json:"totalCount"`
}
