package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propnest-dev/realty_marketplace/backend/config"
	"github.com/propnest-dev/realty_marketplace/backend/models"
)

func AddFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		var fav models.Favorite
		if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
			log.Println("Invalid request data ", err)
			http.Error(w, "Invalid request data", http.StatusBadRequest)
			return
		}

		if fav.ListingID.IsZero() {
			log.Println("ListingID is required")
			http.Error(w, "ListingID is required", http.StatusBadRequest)
			return
		}

		fav.UserID = userID
		fav.ID = primitive.NewObjectID()

		var existingFav models.Favorite
		err := config.FavoriteCollection.FindOne(context.TODO(), bson.M{"userID": userID, "listingID": fav.ListingID}).Decode(&existingFav)
		if err == nil {
			log.Println("Listing is already in favorites")
			http.Error(w, "Listing is already in favorites", http.StatusConflict)
			return
		}
		if err != mongo.ErrNoDocuments {
			log.Println("Failed to check favorites ", err)
			http.Error(w, "Failed to check favorites", http.StatusInternalServerError)
			return
		}

		_, err = config.FavoriteCollection.InsertOne(context.TODO(), fav)
		if err != nil {
			log.Println("Failed to add listing to favorites ", err)
			http.Error(w, "Failed to add listing to favorites", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Listing added to favorites",
			Data:    fav,
		})
	}
}

func GetFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		pipeline := mongo.Pipeline{
			{
				{Key: "$match", Value: bson.M{"userID": userID}},
			},
			{
				{Key: "$lookup", Value: bson.M{
					"from":         "listings",
					"localField":   "listingID",
					"foreignField": "_id",
					"as":           "listingDetails",
				}},
			},
			{
				{Key: "$unwind", Value: "$listingDetails"},
			},
			{
				{Key: "$replaceRoot", Value: bson.M{"newRoot": "$listingDetails"}},
			},
		}

		cursor, err := config.FavoriteCollection.Aggregate(context.TODO(), pipeline)
		if err != nil {
			log.Println("Failed to fetch favorite listings ", err)
			http.Error(w, "Failed to fetch favorite listings", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(context.TODO())

		var listings []models.Listing
		if err := cursor.All(context.TODO(), &listings); err != nil {
			log.Println("Failed to decode favorite listings ", err)
			http.Error(w, "Failed to decode favorite listings", http.StatusInternalServerError)
			return
		}

		for i := range listings {
			listings[i].IsFavorite = true
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Fetched favorite listings",
			Data:    listings,
		})
	}
}

func DeleteFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		params := mux.Vars(r)
		listingIDHex := params["listingID"]

		listingObjID, err := primitive.ObjectIDFromHex(listingIDHex)
		if err != nil {
			log.Println("Invalid listing ID format ", err)
			http.Error(w, "Invalid listing ID format", http.StatusBadRequest)
			return
		}

		deleteResult, err := config.FavoriteCollection.DeleteOne(context.TODO(), bson.M{
			"userID":    userID,
			"listingID": listingObjID,
		})
		if err != nil {
			log.Println("Failed to remove listing from favorites ", err)
			http.Error(w, "Failed to remove listing from favorites", http.StatusInternalServerError)
			return
		}

		if deleteResult.DeletedCount == 0 {
			log.Println("Favorite not found")
			http.Error(w, "Favorite not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Listing removed from favorites",
			Data:    nil,
		})
	}
}
