package photo

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// fakeStore is an in-memory Store for handler and service tests.
type fakeStore struct {
	photos    []Photo
	createErr error
	listErr   error
	clock     time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (s *fakeStore) Create(_ context.Context, url, objectKey string, category Category) (*Photo, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.clock = s.clock.Add(time.Second)
	p := Photo{
		ID:         uuid.NewString(),
		URL:        url,
		ObjectKey:  objectKey,
		Category:   category,
		UploadedAt: s.clock,
	}
	s.photos = append(s.photos, p)
	return &p, nil
}

func (s *fakeStore) ListVisible(_ context.Context) ([]Photo, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	// rows are appended in upload order; the gallery wants newest first
	out := []Photo{}
	for i := len(s.photos) - 1; i >= 0; i-- {
		if !s.photos[i].IsDeleted {
			out = append(out, s.photos[i])
		}
	}
	return out, nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*Photo, error) {
	for i := range s.photos {
		if s.photos[i].ID == id {
			p := s.photos[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeStore) MarkDeleted(_ context.Context, id string) error {
	for i := range s.photos {
		if s.photos[i].ID == id {
			s.photos[i].IsDeleted = true
			return nil
		}
	}
	return ErrNotFound
}

// fakeObjects is an in-memory storage.Storage.
type fakeObjects struct {
	stored    map[string][]byte
	deleted   []string
	uploadErr error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{stored: map[string][]byte{}}
}

func (o *fakeObjects) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	if o.uploadErr != nil {
		return o.uploadErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	o.stored[key] = data
	return nil
}

func (o *fakeObjects) Delete(_ context.Context, key string) error {
	delete(o.stored, key)
	o.deleted = append(o.deleted, key)
	return nil
}

func (o *fakeObjects) PublicURL(key string) string {
	return "http://blobs.test/photos/" + key
}
