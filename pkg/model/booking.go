package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Booking links a renter and an owner by email to a listing by vehicle name.
// There is no referential integrity to listings; the reference is informal.
type Booking struct {
	ID          string    `bson:"_id,omitempty"`
	VehicleName string    `bson:"vehicleName" validate:"required"`
	UserEmail   string    `bson:"userEmail" validate:"required"`
	OwnerEmail  string    `bson:"ownerEmail" validate:"required"`
	CreatedAt   time.Time `bson:"createdAt"`
	Extra       bson.M    `bson:",inline"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	known := map[string]any{
		"vehicleName": b.VehicleName,
		"userEmail":   b.UserEmail,
		"ownerEmail":  b.OwnerEmail,
		"createdAt":   b.CreatedAt,
	}
	if b.ID != "" {
		known["_id"] = b.ID
	}
	return marshalFlattened(b.Extra, known)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.ID = takeString(raw, "_id")
	b.VehicleName = takeString(raw, "vehicleName")
	b.UserEmail = takeString(raw, "userEmail")
	b.OwnerEmail = takeString(raw, "ownerEmail")
	// createdAt is stamped at insert time; a client-supplied value is discarded.
	delete(raw, "createdAt")

	if len(raw) > 0 {
		b.Extra = bson.M(raw)
	} else {
		b.Extra = nil
	}
	return nil
}
