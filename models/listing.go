package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Listing struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ListingID    string             `bson:"id" json:"id"`
	Title        string             `bson:"title" json:"title"`
	ListingType  string             `bson:"listingType" json:"listingType"`
	PropertyType string             `bson:"propertyType" json:"propertyType"`
	Location     string             `bson:"location" json:"location"`
	State        string             `bson:"state" json:"state"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Latitude     *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude    *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Bedrooms     int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int                `bson:"bathrooms" json:"bathrooms"`
	Balconies    int                `bson:"balconies" json:"balconies"`
	AreaSqFt     float64            `bson:"areaSqFt" json:"areaSqFt"`
	CarpetSqFt   float64            `bson:"carpetSqFt,omitempty" json:"carpetSqFt,omitempty"`
	Floor        string             `bson:"floor,omitempty" json:"floor,omitempty"`
	TotalFloors  string             `bson:"totalFloors,omitempty" json:"totalFloors,omitempty"`
	Facing       string             `bson:"facing,omitempty" json:"facing,omitempty"`
	Age          string             `bson:"age,omitempty" json:"age,omitempty"`
	Furnishing   string             `bson:"furnishing,omitempty" json:"furnishing,omitempty"`
	Amenities    []string           `bson:"amenities" json:"amenities"`
	Description  string             `bson:"description" json:"description"`
	Photos       []string           `bson:"photos" json:"photos"`
	Price        float64            `bson:"price" json:"price"`
	Negotiable   bool               `bson:"negotiable" json:"negotiable"`
	Deposit      float64            `bson:"deposit,omitempty" json:"deposit,omitempty"`
	Maintenance  float64            `bson:"maintenance,omitempty" json:"maintenance,omitempty"`
	ListedBy     string             `bson:"listedBy" json:"listedBy"`
	IsVerified   bool               `bson:"isVerified" json:"isVerified"`
	IsFavorite   bool               `bson:"-" json:"isFavorite"`
	CreatedBy    string             `bson:"createdBy" json:"createdBy"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
