package model

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Listing is a vehicle rental offering. Beyond the required fields the
// document is schemaless: callers may attach arbitrary attributes, which are
// stored verbatim through the inline Extra map.
type Listing struct {
	ID          string    `bson:"_id,omitempty"`
	VehicleName string    `bson:"vehicleName" validate:"required"`
	PricePerDay float64   `bson:"pricePerDay" validate:"required"`
	CreatedAt   time.Time `bson:"createdAt,omitempty"`
	Extra       bson.M    `bson:",inline"`
}

func (l Listing) MarshalJSON() ([]byte, error) {
	known := map[string]any{
		"vehicleName": l.VehicleName,
		"pricePerDay": l.PricePerDay,
	}
	if l.ID != "" {
		known["_id"] = l.ID
	}
	if !l.CreatedAt.IsZero() {
		known["createdAt"] = l.CreatedAt
	}
	return marshalFlattened(l.Extra, known)
}

func (l *Listing) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	l.ID = takeString(raw, "_id")
	l.VehicleName = takeString(raw, "vehicleName")
	l.PricePerDay = takeNumber(raw, "pricePerDay")
	// createdAt is server-assigned; a client-supplied value is discarded.
	delete(raw, "createdAt")

	if len(raw) > 0 {
		l.Extra = bson.M(raw)
	} else {
		l.Extra = nil
	}
	return nil
}
