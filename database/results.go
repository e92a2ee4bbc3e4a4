// results.go - Store acknowledgment types returned by the repositories
// These mirror the document-store result shapes the API exposes: every write
// reports what it did (inserted id, matched/modified/upserted counts, deleted
// count) rather than echoing the document back.

package database // Declares the package name

import "errors"

// ErrInsufficientStock is returned by OrderRepo.Place when the conditional
// stock decrement matches no row, i.e. quantity < orderQuantity.
var ErrInsufficientStock = errors.New("insufficient stock")

type InsertResult struct { // Acknowledgment for a successful insert
	InsertedID uint `json:"insertedId"` // Generated id of the new document
}

type UpdateResult struct { // Acknowledgment for an upsert
	MatchedCount  int64 `json:"matchedCount"`  // Rows matched by the filter
	ModifiedCount int64 `json:"modifiedCount"` // Rows actually updated
	UpsertedCount int64 `json:"upsertedCount"` // 1 if the miss created a document
}

type DeleteResult struct { // Acknowledgment for a delete
	DeletedCount int64 `json:"deletedCount"` // Rows removed (0 is not an error)
}
