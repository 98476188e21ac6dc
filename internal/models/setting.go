package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Well-known setting keys. Campaign operators maintain these through the
// admin API; the public endpoints only ever read them.
const (
	SettingTitle       = "title"
	SettingDescription = "description"
	SettingDeadline    = "deadline"
	SettingValidDays   = "validDays"
)

// Setting represents a named campaign configuration value
type Setting struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Key       string             `bson:"key" json:"key"` // Unique key (e.g. "deadline")
	Value     string             `bson:"value" json:"value"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
