// Package model contains domain models shared by the store and API layers.
package model

// Post represents a post entity.
// The id is int64 to align with the BIGSERIAL column of the Postgres backend.
type Post struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
