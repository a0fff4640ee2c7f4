package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/propnest-dev/realty_marketplace/backend/config"
	"github.com/propnest-dev/realty_marketplace/backend/models"
	"github.com/propnest-dev/realty_marketplace/backend/wizard"
)

type ContextKey string

const (
	UserIDKey   = ContextKey("userID")
	UserRoleKey = ContextKey("userRole")
)

// ListingCreator is the wizard's property-creation collaborator: it writes
// the finished listing to Mongo and invalidates the cached search results.
type ListingCreator struct {
	redisClient *redis.Client
}

func NewListingCreator(redisClient *redis.Client) *ListingCreator {
	return &ListingCreator{redisClient: redisClient}
}

func (c *ListingCreator) CreateListing(ctx context.Context, payload wizard.ListingPayload, role string) (wizard.CreationResult, error) {
	objectID := primitive.NewObjectID()
	listing := models.Listing{
		ID:           objectID,
		ListingID:    objectID.Hex(),
		Title:        payload.Title,
		ListingType:  payload.ListingType,
		PropertyType: payload.PropertyType,
		Location:     payload.Location,
		State:        payload.State,
		Address:      payload.Address,
		Latitude:     payload.Latitude,
		Longitude:    payload.Longitude,
		Bedrooms:     payload.Bedrooms,
		Bathrooms:    payload.Bathrooms,
		Balconies:    payload.Balconies,
		AreaSqFt:     payload.AreaSqFt,
		CarpetSqFt:   payload.CarpetSqFt,
		Floor:        payload.Floor,
		TotalFloors:  payload.TotalFloors,
		Facing:       payload.Facing,
		Age:          payload.Age,
		Furnishing:   payload.Furnishing,
		Amenities:    payload.Amenities,
		Description:  payload.Description,
		Photos:       payload.Photos,
		Price:        payload.Price,
		Negotiable:   payload.Negotiable,
		Deposit:      payload.Deposit,
		Maintenance:  payload.Maintenance,
		ListedBy:     role,
		CreatedBy:    payload.CreatedBy,
		CreatedAt:    time.Now(),
	}

	_, err := config.ListingCollection.InsertOne(ctx, listing)
	if err != nil {
		log.Printf("Insert failed for listing by %s: %v", payload.CreatedBy, err)
		return wizard.CreationResult{Success: false, Message: "Failed to create listing"}, err
	}

	go func() {
		deleteListingCache(c.redisClient)
	}()

	return wizard.CreationResult{Success: true, ListingID: listing.ListingID}, nil
}

func GetListings(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context for GetListings")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		query := r.URL.Query()
		cacheKey := generateCacheKey(userID, query)

		cachedData, err := redisClient.Get(r.Context(), cacheKey).Result()
		if err == nil {
			log.Printf("Cache Hit for key: %s", cacheKey)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cachedData))
			return
		}
		if err != redis.Nil {
			log.Printf("Redis GET error for key %s: %v", cacheKey, err)
		}

		log.Printf("Cache Miss for key: %s", cacheKey)

		filter := buildListingFilter(query)
		findOptions := options.Find().SetLimit(20).SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := config.ListingCollection.Find(r.Context(), filter, findOptions)
		if err != nil {
			log.Printf("Error fetching listings with filter %+v: %v", filter, err)
			http.Error(w, "Error fetching listings", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(r.Context())

		var listings []models.Listing
		if err := cursor.All(r.Context(), &listings); err != nil {
			log.Printf("Error decoding listings: %v", err)
			http.Error(w, "Error decoding listings", http.StatusInternalServerError)
			return
		}

		markFavorites(r.Context(), userID, listings)

		resultBytes, err := json.Marshal(listings)
		if err != nil {
			log.Printf("Failed to serialize listings: %v", err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}

		if err := redisClient.Set(r.Context(), cacheKey, resultBytes, 10*time.Minute).Err(); err != nil {
			log.Printf("Failed to cache response for key %s: %v", cacheKey, err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

// buildListingFilter maps search query parameters onto a Mongo filter.
// Numeric fields accept [gte]/[lte]/[gt]/[lt] suffixes, string fields accept
// comma-separated alternatives, amenities match all requested ids.
func buildListingFilter(query url.Values) bson.M {
	var andConditions []bson.M
	rangeConditions := make(map[string]bson.M)

	operatorMap := map[string]string{
		"eq": "$eq", "ne": "$ne", "gt": "$gt", "gte": "$gte", "lt": "$lt", "lte": "$lte",
	}
	numericFields := map[string]bool{
		"price": true, "areaSqFt": true, "bedrooms": true, "bathrooms": true, "deposit": true,
	}
	boolFields := map[string]bool{"isVerified": true, "negotiable": true}
	stringFields := map[string]bool{
		"id": true, "title": true, "listingType": true, "propertyType": true,
		"state": true, "furnishing": true, "facing": true, "listedBy": true, "createdBy": true,
	}

	for rawKey, queryValues := range query {
		if rawKey == "userID" || len(queryValues) == 0 || queryValues[0] == "" {
			continue
		}

		fieldKey := rawKey
		mongoOperator := "$eq"

		if strings.Contains(rawKey, "[") && strings.Contains(rawKey, "]") {
			parts := strings.SplitN(rawKey, "[", 2)
			fieldKey = parts[0]
			opKey := strings.TrimSuffix(parts[1], "]")
			if mappedOp, exists := operatorMap[opKey]; exists {
				mongoOperator = mappedOp
			} else {
				log.Printf("Unknown operator key: %s in query param %s", opKey, rawKey)
				continue
			}
		}
		queryValue := queryValues[0]

		if fieldKey == "location" {
			andConditions = append(andConditions, bson.M{"location": bson.M{
				"$regex": primitive.Regex{Pattern: strings.TrimSpace(queryValue), Options: "i"},
			}})
			continue
		}

		if fieldKey == "amenities" {
			var ids []string
			for _, term := range strings.Split(queryValue, ",") {
				if trimmed := strings.TrimSpace(term); trimmed != "" {
					ids = append(ids, trimmed)
				}
			}
			if len(ids) > 0 {
				andConditions = append(andConditions, bson.M{"amenities": bson.M{"$all": ids}})
			}
			continue
		}

		if stringFields[fieldKey] {
			var values []string
			for _, v := range strings.Split(queryValue, ",") {
				if trimmed := strings.TrimSpace(v); trimmed != "" {
					values = append(values, trimmed)
				}
			}
			if len(values) == 0 {
				continue
			}
			if mongoOperator == "$ne" {
				andConditions = append(andConditions, bson.M{fieldKey: bson.M{"$nin": values}})
			} else {
				andConditions = append(andConditions, bson.M{fieldKey: bson.M{"$in": values}})
			}
			continue
		}

		if boolFields[fieldKey] {
			boolVal, err := strconv.ParseBool(strings.ToLower(queryValue))
			if err == nil {
				andConditions = append(andConditions, bson.M{fieldKey: bson.M{mongoOperator: boolVal}})
			} else {
				log.Printf("Invalid boolean value for %s: %s", fieldKey, queryValue)
			}
			continue
		}

		if numericFields[fieldKey] {
			numVal, err := strconv.ParseFloat(queryValue, 64)
			if err != nil {
				log.Printf("Invalid numeric value for %s operator %s: %s", fieldKey, mongoOperator, queryValue)
				continue
			}
			if _, ok := rangeConditions[fieldKey]; !ok {
				rangeConditions[fieldKey] = bson.M{}
			}
			rangeConditions[fieldKey][mongoOperator] = numVal
			continue
		}

		log.Printf("Unhandled query parameter: %s (parsed as field: %s)", rawKey, fieldKey)
	}

	for field, conditions := range rangeConditions {
		if len(conditions) > 0 {
			andConditions = append(andConditions, bson.M{field: conditions})
		}
	}

	filter := bson.M{}
	if len(andConditions) > 0 {
		filter["$and"] = andConditions
	}
	return filter
}

func markFavorites(ctx context.Context, userID string, listings []models.Listing) {
	if len(listings) == 0 {
		return
	}

	listingIDs := make([]primitive.ObjectID, 0, len(listings))
	for _, l := range listings {
		listingIDs = append(listingIDs, l.ID)
	}

	favFilter := bson.M{
		"userID":    userID,
		"listingID": bson.M{"$in": listingIDs},
	}

	favCursor, err := config.FavoriteCollection.Find(ctx, favFilter)
	if err != nil {
		log.Printf("Error fetching favorites for user %s: %v", userID, err)
		return
	}
	defer favCursor.Close(ctx)

	favMap := make(map[primitive.ObjectID]bool)
	for favCursor.Next(ctx) {
		var fav models.Favorite
		if err := favCursor.Decode(&fav); err != nil {
			log.Printf("Error decoding favorite: %v", err)
			continue
		}
		favMap[fav.ListingID] = true
	}
	if favCursor.Err() != nil {
		log.Printf("Favorite cursor iteration error: %v", favCursor.Err())
	}

	for i := range listings {
		if favMap[listings[i].ID] {
			listings[i].IsFavorite = true
		}
	}
}

func GetListingByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listingID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(listingID)
		if err != nil {
			log.Printf("Invalid listing ID %s: %v", listingID, err)
			http.Error(w, "Invalid listing ID", http.StatusBadRequest)
			return
		}

		var listing models.Listing
		if err := config.ListingCollection.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&listing); err != nil {
			log.Printf("Listing %s not found: %v", listingID, err)
			http.Error(w, "Listing not found", http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(listing)
	}
}

func UpdateListing(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		listingID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(listingID)
		if err != nil {
			log.Printf("Invalid listing ID %s: %v", listingID, err)
			http.Error(w, "Invalid listing ID", http.StatusBadRequest)
			return
		}

		var updateData map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&updateData); err != nil {
			log.Printf("Invalid update data: %v", err)
			http.Error(w, "Invalid update data", http.StatusBadRequest)
			return
		}

		delete(updateData, "_id")
		delete(updateData, "id")
		delete(updateData, "createdBy")
		delete(updateData, "createdAt")
		delete(updateData, "isVerified")

		filter := bson.M{"_id": objID, "createdBy": userID}
		update := bson.M{"$set": updateData}

		res, err := config.ListingCollection.UpdateOne(r.Context(), filter, update)
		if err != nil {
			log.Printf("Update failed for listing %s: %v", listingID, err)
			http.Error(w, "Update failed", http.StatusInternalServerError)
			return
		}

		if res.MatchedCount == 0 {
			log.Printf("No listing found with ID %s and createdBy %s, or unauthorized to update.", listingID, userID)
			http.Error(w, "No listing found or unauthorized", http.StatusForbidden)
			return
		}

		go func() {
			deleteListingCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Listing updated successfully"})
	}
}

func DeleteListing(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(UserIDKey).(string)
		if !ok {
			log.Println("User ID missing in context")
			http.Error(w, "User ID missing in context", http.StatusUnauthorized)
			return
		}

		listingID := mux.Vars(r)["id"]
		objID, err := primitive.ObjectIDFromHex(listingID)
		if err != nil {
			log.Printf("Invalid listing ID %s: %v", listingID, err)
			http.Error(w, "Invalid listing ID", http.StatusBadRequest)
			return
		}

		filter := bson.M{"_id": objID, "createdBy": userID}

		res, err := config.ListingCollection.DeleteOne(r.Context(), filter)
		if err != nil {
			log.Printf("Delete failed for listing %s: %v", listingID, err)
			http.Error(w, "Delete failed", http.StatusInternalServerError)
			return
		}

		if res.DeletedCount == 0 {
			log.Printf("No listing found with ID %s and createdBy %s, or unauthorized to delete.", listingID, userID)
			http.Error(w, "No listing found or unauthorized", http.StatusForbidden)
			return
		}

		go func() {
			deleteListingCache(redisClient)
		}()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Listing deleted successfully"})
	}
}

func generateCacheKey(userID string, queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(userID)
	sb.WriteString(":")

	for _, key := range keys {
		values := queryParams[key]
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "listings:" + hex.EncodeToString(sum[:])
}

func deleteListingCache(redisClient *redis.Client) {
	ctx := context.Background()
	const scanPattern = "listings:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	log.Println("Starting listing cache invalidation...")

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			log.Printf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		log.Println("No listing cache keys found matching pattern to delete.")
		return
	}

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	_, execErr := pipe.Exec(ctx)

	if execErr != nil {
		log.Printf("Error executing pipeline for deleting %d listing cache keys: %v", len(keysToDelete), execErr)
	} else {
		log.Printf("Listing cache invalidated: deleted %d keys matching '%s'.", len(keysToDelete), scanPattern)
	}
}
