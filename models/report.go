package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportOpen     = "open"
	ReportResolved = "resolved"
)

// Report is an abuse/accuracy complaint a user files against a listing.
type Report struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ListingID  primitive.ObjectID `bson:"listingID" json:"listingID"`
	ReportedBy string             `bson:"reportedBy" json:"reportedBy"`
	Reason     string             `bson:"reason" json:"reason"`
	Details    string             `bson:"details,omitempty" json:"details,omitempty"`
	Status     string             `bson:"status" json:"status"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
