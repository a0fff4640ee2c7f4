package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/propnest-dev/realty_marketplace/backend/models"
	"github.com/propnest-dev/realty_marketplace/backend/taxonomy"
)

type propertyTypeInfo struct {
	ID    taxonomy.PropertyType `json:"id"`
	Label string                `json:"label"`
}

type propertyTypeDetail struct {
	ID        taxonomy.PropertyType        `json:"id"`
	Label     string                       `json:"label"`
	Known     bool                         `json:"known"`
	Rule      taxonomy.FieldVisibilityRule `json:"rule"`
	Amenities []taxonomy.AmenityID         `json:"applicableAmenities"`
}

func ListPropertyTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types := taxonomy.AllPropertyTypes()
		out := make([]propertyTypeInfo, 0, len(types))
		for _, t := range types {
			out = append(out, propertyTypeInfo{ID: t, Label: taxonomy.Label(t)})
		}
		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: out})
	}
}

// GetPropertyType returns the visibility rule and applicable amenities for a
// type. Lookups are total, so an unknown type answers with the defaults
// rather than 404.
func GetPropertyType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := taxonomy.PropertyType(mux.Vars(r)["type"])
		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Data: propertyTypeDetail{
				ID:        t,
				Label:     taxonomy.Label(t),
				Known:     taxonomy.KnownType(t),
				Rule:      taxonomy.VisibilityRuleFor(t),
				Amenities: taxonomy.ApplicableAmenitiesFor(t),
			},
		})
	}
}

func ListAmenities() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: taxonomy.AmenityCatalog()})
	}
}
