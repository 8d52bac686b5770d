package photo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a photo does not exist.
var ErrNotFound = errors.New("photo not found")

// Store is the persistence seam used by the service; satisfied by *Repository.
type Store interface {
	Create(ctx context.Context, url, objectKey string, category Category) (*Photo, error)
	ListVisible(ctx context.Context) ([]Photo, error)
	GetByID(ctx context.Context, id string) (*Photo, error)
	MarkDeleted(ctx context.Context, id string) error
}

// Repository handles all photo database operations.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository with the given connection pool.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create inserts a new photo row and returns the stored record.
func (r *Repository) Create(ctx context.Context, url, objectKey string, category Category) (*Photo, error) {
	p := &Photo{}
	err := r.db.QueryRow(ctx,
		`INSERT INTO photos (url, object_key, category)
		 VALUES ($1, $2, $3)
		 RETURNING id, url, object_key, category, uploaded_at, is_deleted`,
		url, objectKey, string(category),
	).Scan(&p.ID, &p.URL, &p.ObjectKey, &p.Category, &p.UploadedAt, &p.IsDeleted)
	if err != nil {
		return nil, fmt.Errorf("create photo: %w", err)
	}
	return p, nil
}

// ListVisible returns all non-deleted photos, newest first.
func (r *Repository) ListVisible(ctx context.Context) ([]Photo, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, url, object_key, category, uploaded_at, is_deleted
		 FROM photos
		 WHERE is_deleted = FALSE
		 ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	defer rows.Close()

	photos := []Photo{}
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.URL, &p.ObjectKey, &p.Category, &p.UploadedAt, &p.IsDeleted); err != nil {
			return nil, fmt.Errorf("scan photo: %w", err)
		}
		photos = append(photos, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate photos: %w", err)
	}
	return photos, nil
}

// GetByID fetches a photo by id. Soft-deleted rows are included so that
// repeated deletes stay idempotent.
func (r *Repository) GetByID(ctx context.Context, id string) (*Photo, error) {
	p := &Photo{}
	err := r.db.QueryRow(ctx,
		`SELECT id, url, object_key, category, uploaded_at, is_deleted
		 FROM photos WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.URL, &p.ObjectKey, &p.Category, &p.UploadedAt, &p.IsDeleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get photo by id: %w", err)
	}
	return p, nil
}

// MarkDeleted flips the soft-delete flag on a photo.
func (r *Repository) MarkDeleted(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE photos SET is_deleted = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark photo deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
