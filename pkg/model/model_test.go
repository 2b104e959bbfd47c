package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestListing_UnmarshalJSON(t *testing.T) {
	body := []byte(`{
		"vehicleName": "Civic",
		"pricePerDay": 40,
		"seats": 5,
		"transmission": "manual",
		"createdAt": "2020-01-01T00:00:00Z",
		"_id": "aaaaaaaaaaaaaaaaaaaaaaaa"
	}`)

	var l Listing
	if err := json.Unmarshal(body, &l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if l.VehicleName != "Civic" {
		t.Errorf("expected vehicleName Civic, got %q", l.VehicleName)
	}
	if l.PricePerDay != 40 {
		t.Errorf("expected pricePerDay 40, got %v", l.PricePerDay)
	}
	if !l.CreatedAt.IsZero() {
		t.Error("client-supplied createdAt should be discarded")
	}
	if l.Extra["seats"] != float64(5) {
		t.Errorf("expected extra field seats=5, got %v", l.Extra["seats"])
	}
	if l.Extra["transmission"] != "manual" {
		t.Errorf("expected extra field transmission, got %v", l.Extra["transmission"])
	}
	if _, ok := l.Extra["vehicleName"]; ok {
		t.Error("known fields must not leak into Extra")
	}
}

func TestListing_MarshalJSON_Flattened(t *testing.T) {
	l := Listing{
		ID:          "aaaaaaaaaaaaaaaaaaaaaaaa",
		VehicleName: "Civic",
		PricePerDay: 40,
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Extra:       map[string]any{"seats": 5},
	}

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	if doc["_id"] != "aaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Errorf("expected _id in payload, got %v", doc["_id"])
	}
	if doc["seats"] != float64(5) {
		t.Errorf("extra fields should flatten to the top level, got %v", doc["seats"])
	}
	if _, ok := doc["Extra"]; ok {
		t.Error("Extra must not appear as a nested key")
	}
	if doc["createdAt"] == nil {
		t.Error("createdAt should be present once assigned")
	}
}

func TestListing_MarshalJSON_OmitsUnsetOptionalFields(t *testing.T) {
	l := Listing{VehicleName: "Civic", PricePerDay: 40}

	data, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	if _, ok := doc["_id"]; ok {
		t.Error("unassigned _id should be omitted")
	}
	if _, ok := doc["createdAt"]; ok {
		t.Error("zero createdAt should be omitted")
	}
}

func TestBooking_UnmarshalJSON(t *testing.T) {
	body := []byte(`{
		"vehicleName": "Civic",
		"userEmail": "renter@example.com",
		"ownerEmail": "owner@example.com",
		"createdAt": "1999-01-01T00:00:00Z",
		"pickupLocation": "Dhaka"
	}`)

	var b Booking
	if err := json.Unmarshal(body, &b); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if b.UserEmail != "renter@example.com" {
		t.Errorf("expected renter email, got %q", b.UserEmail)
	}
	if !b.CreatedAt.IsZero() {
		t.Error("client-supplied createdAt should be discarded")
	}
	if b.Extra["pickupLocation"] != "Dhaka" {
		t.Errorf("expected extra field pickupLocation, got %v", b.Extra["pickupLocation"])
	}
}

func TestBooking_MarshalJSON(t *testing.T) {
	b := Booking{
		ID:          "bbbbbbbbbbbbbbbbbbbbbbbb",
		VehicleName: "Civic",
		UserEmail:   "renter@example.com",
		OwnerEmail:  "owner@example.com",
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}

	if doc["ownerEmail"] != "owner@example.com" {
		t.Errorf("expected ownerEmail, got %v", doc["ownerEmail"])
	}
	if doc["createdAt"] == nil {
		t.Error("bookings always carry createdAt")
	}
}

func TestListing_UnmarshalJSON_WrongTypesTreatedAsAbsent(t *testing.T) {
	body := []byte(`{"vehicleName": 12, "pricePerDay": "forty"}`)

	var l Listing
	if err := json.Unmarshal(body, &l); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if l.VehicleName != "" {
		t.Errorf("non-string vehicleName should decode as empty, got %q", l.VehicleName)
	}
	if l.PricePerDay != 0 {
		t.Errorf("non-numeric pricePerDay should decode as zero, got %v", l.PricePerDay)
	}
}
