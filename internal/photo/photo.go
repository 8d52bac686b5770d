// Package photo implements the gallery: password-gated uploads, public
// listing, and soft deletion of photos backed by object storage and PostgreSQL.
package photo

import "time"

// Category classifies an uploaded photo for gallery filtering.
type Category string

// Known categories. The gallery groups interior-design shots separately
// from professional certificates.
const (
	CategoryInterior    Category = "interior"
	CategoryCertificate Category = "certificate"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryInterior || c == CategoryCertificate
}

// Photo is a single gallery image. Deletion is a one-way flag flip;
// rows are never physically removed and the blob is never reclaimed.
type Photo struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	ObjectKey  string    `json:"-"`
	Category   Category  `json:"category"`
	UploadedAt time.Time `json:"uploadedAt"`
	IsDeleted  bool      `json:"isDeleted"`
}
