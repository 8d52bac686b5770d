package photo

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fotowall/service/internal/storage"
)

// MaxFileSize is the upload ceiling per file.
const MaxFileSize = 10 << 20 // 10 MiB

// Service-level errors, translated to HTTP status codes at the handler boundary.
var (
	ErrMissingFields    = errors.New("missing required fields")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrInvalidFileType  = errors.New("invalid file type")
	ErrFileTooLarge     = errors.New("file too large")
	ErrPasswordRequired = errors.New("password is required")
	ErrUnauthorized     = errors.New("unauthorized")
)

// Credentials are the shared-secret passwords gating uploads and deletes.
// They are compared server-side on every request; no client-side gate is
// trusted, and they are never baked into the binary.
type Credentials struct {
	UploadPasswords map[Category]string
	DeletePasswords []string
}

// File is one member of an upload batch.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        io.Reader
}

// FailedFile reports why a single batch member was not stored.
type FailedFile struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// UploadResult is the outcome of a best-effort batch upload.
type UploadResult struct {
	Uploaded []Photo      `json:"uploaded"`
	Failed   []FailedFile `json:"failed,omitempty"`
}

// Service contains the gallery business logic.
type Service struct {
	store   Store
	objects storage.Storage
	creds   Credentials
	log     *zap.Logger
}

// NewService creates a new gallery Service.
func NewService(store Store, objects storage.Storage, creds Credentials, log *zap.Logger) *Service {
	return &Service{store: store, objects: objects, creds: creds, log: log}
}

// List returns all non-deleted photos, newest first.
func (s *Service) List(ctx context.Context) ([]Photo, error) {
	return s.store.ListVisible(ctx)
}

// Upload validates and stores a batch of files under the given category.
//
// Request-level preconditions (files present, known category, matching
// password) fail the whole batch. Per-file type/size checks and per-file
// storage failures are best-effort: the result carries whichever photos
// succeeded alongside per-item errors for the rest. When no file survives
// validation, the first validation error is returned so a single bad file
// yields a plain 400.
func (s *Service) Upload(ctx context.Context, files []File, category Category, password string) (*UploadResult, error) {
	if len(files) == 0 || category == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, category)
	}

	result := &UploadResult{}
	var valid []File
	var firstErr error
	for _, f := range files {
		if err := validateFile(f); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			result.Failed = append(result.Failed, FailedFile{Filename: f.Name, Error: err.Error()})
			continue
		}
		valid = append(valid, f)
	}
	if len(valid) == 0 {
		return nil, firstErr
	}

	if s.creds.UploadPasswords[category] != password {
		return nil, ErrUnauthorized
	}

	for _, f := range valid {
		p, err := s.storeFile(ctx, f, category)
		if err != nil {
			result.Failed = append(result.Failed, FailedFile{Filename: f.Name, Error: err.Error()})
			continue
		}
		result.Uploaded = append(result.Uploaded, *p)
	}
	return result, nil
}

// UploadDataURI accepts the JSON upload variant: a base64 data URI instead of a
// multipart file. The decoded bytes flow through the same validation and
// blob-then-row pipeline, so nothing is ever stored inline in the database.
func (s *Service) UploadDataURI(ctx context.Context, uri string, category Category, password string) (*Photo, error) {
	if uri == "" || category == "" || password == "" {
		return nil, ErrMissingFields
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownCategory, category)
	}

	contentType, data, err := parseImageDataURI(uri)
	if err != nil {
		return nil, err
	}
	f := File{
		Name:        "inline" + extForContentType(contentType),
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        bytes.NewReader(data),
	}
	if err := validateFile(f); err != nil {
		return nil, err
	}

	if s.creds.UploadPasswords[category] != password {
		return nil, ErrUnauthorized
	}

	return s.storeFile(ctx, f, category)
}

// Delete soft-deletes a photo after a password check. The flag flip is
// idempotent: deleting an already-deleted photo succeeds again. The blob is
// left in place (no reclamation of soft-deleted objects — product decision).
func (s *Service) Delete(ctx context.Context, id, password string) error {
	if password == "" {
		return ErrPasswordRequired
	}
	if !s.deleteAuthorized(password) {
		return ErrUnauthorized
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.MarkDeleted(ctx, id)
}

// storeFile writes the blob first, then the metadata row. The two stores share
// no transaction; on insert failure the freshly written blob is removed so it
// cannot linger without a row pointing at it.
func (s *Service) storeFile(ctx context.Context, f File, category Category) (*Photo, error) {
	key := objectKey(f.Name)
	if err := s.objects.Upload(ctx, key, f.Data, f.Size, f.ContentType); err != nil {
		s.log.Error("blob upload failed", zap.String("key", key), zap.Error(err))
		return nil, errors.New("failed to store file")
	}

	p, err := s.store.Create(ctx, s.objects.PublicURL(key), key, category)
	if err != nil {
		s.log.Error("photo insert failed", zap.String("key", key), zap.Error(err))
		if delErr := s.objects.Delete(ctx, key); delErr != nil {
			s.log.Error("orphan blob cleanup failed", zap.String("key", key), zap.Error(delErr))
		}
		return nil, errors.New("failed to save photo")
	}

	s.log.Info("photo uploaded",
		zap.String("id", p.ID),
		zap.String("category", string(category)),
		zap.Int64("size", f.Size),
	)
	return p, nil
}

func (s *Service) deleteAuthorized(password string) bool {
	for _, p := range s.creds.DeletePasswords {
		if p == password {
			return true
		}
	}
	return false
}

// validateFile enforces the declared content type and the size ceiling.
func validateFile(f File) error {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return ErrInvalidFileType
	}
	if f.Size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// objectKey builds a unique storage key from the upload time and a random
// suffix, keeping the original extension so the served content type matches.
func objectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}

// parseImageDataURI splits a "data:image/...;base64," URI into its content
// type and decoded payload. Anything that is not a base64 image URI is an
// invalid file type.
func parseImageDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:image/") {
		return "", nil, ErrInvalidFileType
	}
	rest := strings.TrimPrefix(uri, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, ErrInvalidFileType
	}
	contentType := rest[:sep]
	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, ErrInvalidFileType
	}
	return contentType, data, nil
}

// extForContentType derives a filename extension from an image content type.
func extForContentType(contentType string) string {
	sub := strings.TrimPrefix(contentType, "image/")
	if i := strings.IndexAny(sub, "+;"); i >= 0 {
		sub = sub[:i]
	}
	if sub == "" {
		return ""
	}
	return "." + sub
}
