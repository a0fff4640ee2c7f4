package wizard

import "github.com/propnest-dev/realty_marketplace/backend/taxonomy"

// ListingPayload is the submission shape handed to the listing creator.
// Numeric-looking draft strings are coerced here; the property type passes
// through unchanged since the draft already holds the backend vocabulary.
type ListingPayload struct {
	Title        string   `json:"title"`
	ListingType  string   `json:"listingType"`
	PropertyType string   `json:"propertyType"`
	Location     string   `json:"location"`
	State        string   `json:"state"`
	Address      string   `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Balconies    int      `json:"balconies"`
	AreaSqFt     float64  `json:"areaSqFt"`
	CarpetSqFt   float64  `json:"carpetSqFt,omitempty"`
	Floor        string   `json:"floor,omitempty"`
	TotalFloors  string   `json:"totalFloors,omitempty"`
	Facing       string   `json:"facing,omitempty"`
	Age          string   `json:"age,omitempty"`
	Furnishing   string   `json:"furnishing,omitempty"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description"`
	Photos       []string `json:"photos"`
	Price        float64  `json:"price"`
	Negotiable   bool     `json:"negotiable"`
	Deposit      float64  `json:"deposit,omitempty"`
	Maintenance  float64  `json:"maintenance,omitempty"`
	CreatedBy    string   `json:"createdBy"`
}

// Backend transaction vocabulary.
const (
	listingTypeSell = "sell"
	listingTypeRent = "rent"
)

func assemblePayload(d *Draft, userID string) ListingPayload {
	listingType := listingTypeSell
	if d.Status == ForRent {
		listingType = listingTypeRent
	}

	// Drop amenities that are no longer applicable; a type change after the
	// amenities step must not leak stale selections into the listing.
	amenities := make([]string, 0, len(d.Amenities))
	for _, a := range d.Amenities {
		if taxonomy.AmenityApplicable(d.PropertyType, taxonomy.AmenityID(a)) {
			amenities = append(amenities, a)
		}
	}

	// Only attachments carrying the approved tag ship with the payload.
	photos := make([]string, 0, len(d.Photos))
	for _, p := range d.Photos {
		if p.Status == PhotoApproved && p.Data != "" {
			photos = append(photos, p.Data)
		}
	}

	return ListingPayload{
		Title:        d.Title,
		ListingType:  listingType,
		PropertyType: string(d.PropertyType),
		Location:     d.Location,
		State:        d.State,
		Address:      d.Address,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		Bedrooms:     intOrZero(d.Bedrooms),
		Bathrooms:    intOrZero(d.Bathrooms),
		Balconies:    intOrZero(d.Balconies),
		AreaSqFt:     ParseAmount(d.BuiltUpArea),
		CarpetSqFt:   ParseAmount(d.CarpetArea),
		Floor:        d.Floor,
		TotalFloors:  d.TotalFloors,
		Facing:       d.Facing,
		Age:          d.Age,
		Furnishing:   d.Furnishing,
		Amenities:    amenities,
		Description:  d.Description,
		Photos:       photos,
		Price:        ParseAmount(d.Price),
		Negotiable:   d.Negotiable,
		Deposit:      ParseAmount(d.Deposit),
		Maintenance:  ParseAmount(d.Maintenance),
		CreatedBy:    userID,
	}
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
