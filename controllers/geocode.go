package controllers

import (
	"log"
	"net/http"

	"github.com/propnest-dev/realty_marketplace/backend/geocode"
	"github.com/propnest-dev/realty_marketplace/backend/models"
)

// SuggestLocations proxies the geocoding autosuggest used by the wizard's
// location and state fields. Short queries answer with an empty list.
func SuggestLocations(geo *geocode.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		suggestions, err := geo.Suggest(r.Context(), query)
		if err != nil {
			log.Printf("Geocoder lookup failed for %q: %v", query, err)
			writeJSON(w, http.StatusBadGateway, models.APIResponse{Success: false, Message: "Location lookup failed"})
			return
		}
		if suggestions == nil {
			suggestions = []geocode.Suggestion{}
		}

		writeJSON(w, http.StatusOK, models.APIResponse{Success: true, Data: suggestions})
	}
}
