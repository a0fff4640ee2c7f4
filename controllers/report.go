package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/propnest-dev/realty_marketplace/backend/config"
	"github.com/propnest-dev/realty_marketplace/backend/models"
)

// ReportListing files an abuse/accuracy complaint against a listing.
func ReportListing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		var report models.Report
		if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
			http.Error(w, "Invalid input", http.StatusBadRequest)
			return
		}

		if report.ListingID.IsZero() {
			http.Error(w, "ListingID is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(report.Reason) == "" {
			http.Error(w, "Reason is required", http.StatusBadRequest)
			return
		}

		var listing models.Listing
		err := config.ListingCollection.FindOne(context.TODO(), bson.M{"_id": report.ListingID}).Decode(&listing)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				log.Println("No such listing", report.ListingID.Hex())
				http.Error(w, "No such listing", http.StatusBadRequest)
			} else {
				http.Error(w, "Error checking database", http.StatusInternalServerError)
			}
			return
		}

		report.ReportedBy = userID
		report.Status = models.ReportOpen
		report.CreatedAt = time.Now()

		_, err = config.ReportCollection.InsertOne(context.TODO(), report)
		if err != nil {
			http.Error(w, "Insert failed", http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Report submitted"})
	}
}

// GetMyReports returns the reports the caller has filed, newest first, with
// the reported listing attached.
func GetMyReports() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		pipeline := mongo.Pipeline{
			{
				{Key: "$match", Value: bson.M{"reportedBy": userID}},
			},
			{
				{Key: "$sort", Value: bson.M{"createdAt": -1}},
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
				{Key: "$unwind", Value: bson.M{
					"path":                       "$listingDetails",
					"preserveNullAndEmptyArrays": true,
				}},
			},
		}

		cursor, err := config.ReportCollection.Aggregate(context.TODO(), pipeline)
		if err != nil {
			log.Printf("Error aggregating reports for user %s: %v", userID, err)
			http.Error(w, "Failed to retrieve reports", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(context.TODO())

		var reports []bson.M
		if err := cursor.All(context.TODO(), &reports); err != nil {
			log.Printf("Error decoding reports for user %s: %v", userID, err)
			http.Error(w, "Failed to decode reports", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.APIResponse{
			Success: true,
			Message: "Fetched reports",
			Data:    reports,
		})
	}
}
