package routes

import (
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propnest-dev/realty_marketplace/backend/controllers"
	"github.com/propnest-dev/realty_marketplace/backend/geocode"
	"github.com/propnest-dev/realty_marketplace/backend/middleware"
	"github.com/propnest-dev/realty_marketplace/backend/wizard"
)

func Routes(router *mux.Router, client *mongo.Client, redisClient *redis.Client, store *wizard.Store, geo *geocode.Client) {
	// Auth routes
	router.HandleFunc("/register", controllers.RegisterUser(client)).Methods("POST")
	router.HandleFunc("/login", controllers.LoginUser(client)).Methods("POST")

	// Routes that require authentication
	authenticated := router.PathPrefix("/api").Subrouter()
	authenticated.Use(middleware.AuthMiddleware)

	// Listing routes
	authenticated.HandleFunc("/listings", controllers.GetListings(redisClient)).Methods("GET")
	authenticated.HandleFunc("/listings/{id}", controllers.GetListingByID()).Methods("GET")
	authenticated.HandleFunc("/listings/{id}", controllers.UpdateListing(redisClient)).Methods("PUT")
	authenticated.HandleFunc("/listings/{id}", controllers.DeleteListing(redisClient)).Methods("DELETE")

	// Listing wizard routes
	creator := controllers.NewListingCreator(redisClient)
	authenticated.HandleFunc("/wizard", controllers.StartWizard(store)).Methods("POST")
	authenticated.HandleFunc("/wizard/{sessionID}", controllers.GetWizard(store)).Methods("GET")
	authenticated.HandleFunc("/wizard/{sessionID}", controllers.CancelWizard(store)).Methods("DELETE")
	authenticated.HandleFunc("/wizard/{sessionID}/draft", controllers.UpdateWizardDraft(store)).Methods("PUT")
	authenticated.HandleFunc("/wizard/{sessionID}/photos", controllers.AddWizardPhotos(store)).Methods("POST")
	authenticated.HandleFunc("/wizard/{sessionID}/photos/{index}", controllers.RemoveWizardPhoto(store)).Methods("DELETE")
	authenticated.HandleFunc("/wizard/{sessionID}/next", controllers.WizardNext(store, creator)).Methods("POST")
	authenticated.HandleFunc("/wizard/{sessionID}/previous", controllers.WizardPrevious(store)).Methods("POST")

	// Taxonomy routes
	authenticated.HandleFunc("/taxonomy/property-types", controllers.ListPropertyTypes()).Methods("GET")
	authenticated.HandleFunc("/taxonomy/property-types/{type}", controllers.GetPropertyType()).Methods("GET")
	authenticated.HandleFunc("/taxonomy/amenities", controllers.ListAmenities()).Methods("GET")

	// Geocoding autosuggest
	authenticated.HandleFunc("/geocode/suggest", controllers.SuggestLocations(geo)).Methods("GET")

	// Favorites routes
	authenticated.HandleFunc("/favorites", controllers.AddFavorite()).Methods("POST")
	authenticated.HandleFunc("/favorites", controllers.GetFavorites()).Methods("GET")
	authenticated.HandleFunc("/favorites/{listingID}", controllers.DeleteFavorite()).Methods("DELETE")

	// Report routes
	authenticated.HandleFunc("/reports", controllers.ReportListing()).Methods("POST")
	authenticated.HandleFunc("/reports", controllers.GetMyReports()).Methods("GET")
}
