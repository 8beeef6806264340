// Package card manages the gallery catalog: the Card entity, its
// persistence, and the ingestion/deletion pipelines that keep the in-memory
// catalog and the backing stores in step.
package card

import (
	"errors"
	"time"
)

// Card is one gallery entry: a stored image plus the prompt that produced it.
type Card struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Prompt    string    `json:"prompt"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultCategory is assigned when an upload omits the category.
const DefaultCategory = "GOAT"

// DefaultCategories is the fixed movie label set offered by the UI. Labels
// discovered in the catalog are appended after these.
var DefaultCategories = []string{
	"GOAT", "Leo", "Master", "Beast", "Varisu", "Bigil",
	"Mersal", "Sarkar", "The Greatest Of All Time", "Other",
}

// ErrNotFound is returned when a card id is not present in the catalog.
var ErrNotFound = errors.New("card not found")

// ErrPermission is returned when the metadata store accepts a delete but
// reports zero affected rows. An empty result is indistinguishable from
// "nothing matched" and is never treated as success.
var ErrPermission = errors.New("permission denied by metadata store")

// ErrUpload is returned when the binary object cannot be stored.
var ErrUpload = errors.New("object upload failed")

// ErrMetadataWrite is returned when the metadata store rejects a write.
var ErrMetadataWrite = errors.New("metadata write failed")

// ErrInvalidInput is returned when ingestion preconditions are not met.
var ErrInvalidInput = errors.New("invalid input")
