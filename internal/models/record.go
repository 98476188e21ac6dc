package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawRecord is one lottery outcome. Phone is stored in normalized form
// (leading zeros stripped). DrawTime keeps the human-readable string that was
// shown to the participant; DrawDay is its calendar day in the campaign
// timezone and carries the unique (phone, drawDay) index that guarantees
// at most one draw per phone per eligibility day.
type DrawRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Phone     string             `bson:"phone" json:"phone"`
	DrawTime  string             `bson:"drawTime" json:"drawTime"`
	DrawDay   string             `bson:"drawDay" json:"drawDay"` // "2006-01-02"
	Prize     string             `bson:"prize" json:"prize"`
	ExpireAt  string             `bson:"expireAt" json:"expireAt"` // "2006-01-02"
	ClaimedAt string             `bson:"claimedAt,omitempty" json:"claimedAt,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HistoryEntry is the projection returned by POST /api/query-history.
// Missing fields are empty strings, never null.
type HistoryEntry struct {
	Time    string `json:"time"`
	Phone   string `json:"phone"`
	Prize   string `json:"prize"`
	Expire  string `json:"expire"`
	Claimed string `json:"claimed"`
}

// DrawStatus reports the outcome of a duplicate-draw check. Time and Prize
// hold the stored strings of the matching record when Exists is true.
type DrawStatus struct {
	Exists bool   `json:"exists"`
	Time   string `json:"time,omitempty"`
	Prize  string `json:"prize,omitempty"`
}

// DrawResult is the outcome of a completed server-side draw.
type DrawResult struct {
	Prize  string `json:"prize"`
	Time   string `json:"time"`
	Expire string `json:"expire"`
}
