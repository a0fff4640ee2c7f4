// Package wizard implements the five-step listing creation flow: a draft
// owned by one session, ordered per-step validation driven by the taxonomy
// rules, photo handling, and final payload assembly for the listing creator.
package wizard

import (
	"strings"

	"github.com/propnest-dev/realty_marketplace/backend/taxonomy"
)

type Step int

const (
	StepBasicInfo Step = iota + 1
	StepDetails
	StepAmenities
	StepPhotos
	StepPricing
)

const FinalStep = StepPricing

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "Basic Info"
	case StepDetails:
		return "Details"
	case StepAmenities:
		return "Amenities & Description"
	case StepPhotos:
		return "Photos"
	case StepPricing:
		return "Pricing"
	}
	return "Unknown"
}

type TransactionStatus string

const (
	ForSale TransactionStatus = "sale"
	ForRent TransactionStatus = "rent"
)

type PhotoStatus string

// Photos are auto-approved at selection time; there is no moderation call in
// the current flow, the tag exists so one can be added without a data change.
const PhotoApproved PhotoStatus = "approved"

type Photo struct {
	URI    string      `json:"uri"`
	Data   string      `json:"data,omitempty"`
	Status PhotoStatus `json:"status"`
}

// Draft is the in-progress listing. It lives only inside one wizard session
// and is discarded on submission, cancellation, or session expiry.
type Draft struct {
	Title        string                `json:"title"`
	Status       TransactionStatus     `json:"status"`
	PropertyType taxonomy.PropertyType `json:"propertyType"`

	Location  string   `json:"location"`
	State     string   `json:"state"`
	Address   string   `json:"address,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	Bedrooms    *int   `json:"bedrooms,omitempty"`
	Bathrooms   *int   `json:"bathrooms,omitempty"`
	Balconies   *int   `json:"balconies,omitempty"`
	BuiltUpArea string `json:"builtUpArea"`
	CarpetArea  string `json:"carpetArea,omitempty"`
	Floor       string `json:"floor,omitempty"`
	TotalFloors string `json:"totalFloors,omitempty"`
	Facing      string `json:"facing,omitempty"`
	Age         string `json:"age,omitempty"`
	Furnishing  string `json:"furnishing,omitempty"`

	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`

	Photos []Photo `json:"photos"`

	Price       string `json:"price"`
	Negotiable  bool   `json:"negotiable"`
	Deposit     string `json:"deposit,omitempty"`
	Maintenance string `json:"maintenance,omitempty"`
}

// DraftUpdate is a partial draft mutation; nil fields are left untouched.
// Nullable counters cannot be cleared back to "not set" through an update,
// which matches the form: once a count is picked it can only be changed.
type DraftUpdate struct {
	Title        *string                `json:"title,omitempty"`
	Status       *TransactionStatus     `json:"status,omitempty"`
	PropertyType *taxonomy.PropertyType `json:"propertyType,omitempty"`
	Location     *string                `json:"location,omitempty"`
	State        *string                `json:"state,omitempty"`
	Address      *string                `json:"address,omitempty"`
	Latitude     *float64               `json:"latitude,omitempty"`
	Longitude    *float64               `json:"longitude,omitempty"`
	Bedrooms     *int                   `json:"bedrooms,omitempty"`
	Bathrooms    *int                   `json:"bathrooms,omitempty"`
	Balconies    *int                   `json:"balconies,omitempty"`
	BuiltUpArea  *string                `json:"builtUpArea,omitempty"`
	CarpetArea   *string                `json:"carpetArea,omitempty"`
	Floor        *string                `json:"floor,omitempty"`
	TotalFloors  *string                `json:"totalFloors,omitempty"`
	Facing       *string                `json:"facing,omitempty"`
	Age          *string                `json:"age,omitempty"`
	Furnishing   *string                `json:"furnishing,omitempty"`
	Amenities    []string               `json:"amenities,omitempty"`
	Description  *string                `json:"description,omitempty"`
	Price        *string                `json:"price,omitempty"`
	Negotiable   *bool                  `json:"negotiable,omitempty"`
	Deposit      *string                `json:"deposit,omitempty"`
	Maintenance  *string                `json:"maintenance,omitempty"`
}

func (d *Draft) apply(u DraftUpdate) {
	if u.Title != nil {
		d.Title = *u.Title
	}
	if u.Status != nil {
		d.Status = *u.Status
	}
	if u.PropertyType != nil {
		d.PropertyType = *u.PropertyType
		if d.PropertyType == taxonomy.StudioApartment {
			zero := 0
			d.Bedrooms = &zero
		}
	}
	if u.Location != nil {
		d.Location = *u.Location
	}
	if u.State != nil {
		d.State = *u.State
	}
	if u.Address != nil {
		d.Address = *u.Address
	}
	if u.Latitude != nil {
		d.Latitude = u.Latitude
	}
	if u.Longitude != nil {
		d.Longitude = u.Longitude
	}
	if u.Bedrooms != nil && d.PropertyType != taxonomy.StudioApartment {
		d.Bedrooms = u.Bedrooms
	}
	if u.Bathrooms != nil {
		d.Bathrooms = u.Bathrooms
	}
	if u.Balconies != nil {
		d.Balconies = u.Balconies
	}
	if u.BuiltUpArea != nil {
		d.BuiltUpArea = *u.BuiltUpArea
	}
	if u.CarpetArea != nil {
		d.CarpetArea = *u.CarpetArea
	}
	if u.Floor != nil {
		d.Floor = *u.Floor
	}
	if u.TotalFloors != nil {
		d.TotalFloors = *u.TotalFloors
	}
	if u.Facing != nil {
		d.Facing = *u.Facing
	}
	if u.Age != nil {
		d.Age = *u.Age
	}
	if u.Furnishing != nil {
		d.Furnishing = *u.Furnishing
	}
	if u.Amenities != nil {
		d.Amenities = u.Amenities
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.Price != nil {
		d.Price = *u.Price
	}
	if u.Negotiable != nil {
		d.Negotiable = *u.Negotiable
	}
	if u.Deposit != nil {
		d.Deposit = *u.Deposit
	}
	if u.Maintenance != nil {
		d.Maintenance = *u.Maintenance
	}
}

// MaxPhotos is the hard cap per listing; additions past it are truncated
// with a warning rather than rejected.
const MaxPhotos = 10

// CapacityWarning is surfaced when a photo selection had to be truncated.
const CapacityWarning = "Photo limit reached: a listing can have at most 10 photos"

type PhotoInput struct {
	URI    string `json:"uri"`
	Base64 string `json:"base64,omitempty"`
}

func (d *Draft) addPhotos(in []PhotoInput) (added int, warning string) {
	for _, p := range in {
		if len(d.Photos) >= MaxPhotos {
			warning = CapacityWarning
			break
		}
		d.Photos = append(d.Photos, Photo{
			URI:    p.URI,
			Data:   toDataURI(p.Base64),
			Status: PhotoApproved,
		})
		added++
	}
	return added, warning
}

func (d *Draft) removePhoto(i int) bool {
	if i < 0 || i >= len(d.Photos) {
		return false
	}
	d.Photos = append(d.Photos[:i], d.Photos[i+1:]...)
	return true
}

func toDataURI(b64 string) string {
	if b64 == "" || strings.HasPrefix(b64, "data:") {
		return b64
	}
	return "data:image/jpeg;base64," + b64
}
