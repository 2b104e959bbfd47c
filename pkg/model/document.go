package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
)

// marshalFlattened renders a document's free-form fields and its known fields
// as a single flat JSON object, the way the documents are stored.
func marshalFlattened(extra bson.M, known map[string]any) ([]byte, error) {
	doc := make(map[string]any, len(extra)+len(known))
	for k, v := range extra {
		doc[k] = v
	}
	for k, v := range known {
		doc[k] = v
	}
	return json.Marshal(doc)
}

func takeString(raw map[string]any, key string) string {
	v, _ := raw[key].(string)
	delete(raw, key)
	return v
}

func takeNumber(raw map[string]any, key string) float64 {
	v, _ := raw[key].(float64)
	delete(raw, key)
	return v
}
