package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Prize defines a single weighted draw candidate. Rate is a relative weight,
// not a probability: rates do not need to sum to 1.
type Prize struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Rate      float64            `bson:"rate" json:"rate"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PrizeView is the public projection returned by GET /api/prizes.
type PrizeView struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}
