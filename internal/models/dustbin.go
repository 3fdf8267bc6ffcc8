package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dustbin is a monitored bin. FillPct is the last reported fill level;
// crossing the configured threshold opens a collection request.
type Dustbin struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DustbinNumber string             `bson:"dustbin_number" json:"dustbinNumber" validate:"required"`
	Location      string             `bson:"location" json:"location" validate:"required"`
	FillPct       float64            `bson:"fill_pct" json:"fillPct"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}
