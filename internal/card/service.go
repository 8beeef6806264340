package card

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/compress"
	"github.com/wasteedit06-ui/thalapathy-ai-gallery/internal/storage"
)

// Ingestion parameters: a deliberate size/fidelity tradeoff, not
// configurable per upload.
const (
	uploadQuality  = 0.5
	uploadMaxWidth = compress.DefaultMaxWidth
)

// MetadataStore is the narrow persistence surface the pipelines need.
// *Repository implements it; tests substitute an in-memory fake.
type MetadataStore interface {
	Insert(ctx context.Context, prompt, imageURL, category string) (*Card, error)
	DeleteReturning(ctx context.Context, id string) (*Card, error)
	ListNewestFirst(ctx context.Context) ([]Card, error)
}

// DeleteResult reports the outcome of a deletion. CleanupErr is set when the
// metadata row was removed but the binary object could not be — a partial
// success the caller surfaces as a warning, never as a failure.
type DeleteResult struct {
	Card       Card
	CleanupErr error
}

// Service owns the catalog and runs the ingestion and deletion pipelines.
type Service struct {
	store   MetadataStore
	objects storage.Storage
	catalog *Catalog
}

// NewService creates a card Service around the given stores.
func NewService(store MetadataStore, objects storage.Storage) *Service {
	return &Service{
		store:   store,
		objects: objects,
		catalog: NewCatalog(),
	}
}

// Refresh replaces the catalog with the store's current contents.
func (s *Service) Refresh(ctx context.Context) error {
	cards, err := s.store.ListNewestFirst(ctx)
	if err != nil {
		return fmt.Errorf("refresh catalog: %w", err)
	}
	s.catalog.ReplaceAll(cards)
	log.Info().Int("cards", len(cards)).Msg("catalog refreshed")
	return nil
}

// Cards returns the catalog contents, optionally filtered by category,
// newest first.
func (s *Service) Cards(category string) []Card {
	return FilterByCategory(s.catalog.Cards(), category)
}

// Categories returns the selectable category labels for the current catalog.
func (s *Service) Categories() []string {
	return Categories(s.catalog.Cards())
}

// Ingest runs the upload pipeline: compress, store the binary under a fresh
// random key, persist the metadata row, and prepend the new card to the
// catalog. Steps are strictly sequential; a failed step aborts the rest and
// triggers no cleanup of earlier ones — an uploaded binary orphaned by a
// failed insert is an accepted leak.
func (s *Service) Ingest(ctx context.Context, image io.Reader, prompt, category string) (*Card, error) {
	if image == nil {
		return nil, fmt.Errorf("%w: image is required", ErrInvalidInput)
	}
	if prompt == "" {
		return nil, fmt.Errorf("%w: prompt is required", ErrInvalidInput)
	}
	if category == "" {
		category = DefaultCategory
	}

	res, err := compress.Compress(image, uploadQuality, uploadMaxWidth)
	if err != nil {
		return nil, err
	}

	// Compression normalizes the format, so the extension is always correct.
	key := uuid.New().String() + ".jpg"

	if err := s.objects.Upload(ctx, key, bytes.NewReader(res.Data), int64(len(res.Data)), "image/jpeg"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpload, err)
	}

	imageURL := s.objects.PublicURL(key)

	created, err := s.store.Insert(ctx, prompt, imageURL, category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMetadataWrite, err)
	}

	s.catalog.Prepend(*created)

	log.Info().
		Str("card_id", created.ID).
		Str("category", created.Category).
		Int("width", res.Width).
		Int("height", res.Height).
		Int("bytes", len(res.Data)).
		Msg("card ingested")

	return created, nil
}

// Delete runs the deletion pipeline. The metadata row is removed first and
// gates everything else: a dangling row is a worse failure than an orphaned
// binary. A delete that matches zero rows despite the card being cataloged is
// treated as a silent authorization refusal, not success.
func (s *Service) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	cached, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.store.DeleteReturning(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete card %s: %w", id, err)
	}
	if deleted == nil {
		log.Warn().Str("card_id", id).Msg("delete matched zero rows, treating as permission refusal")
		return nil, ErrPermission
	}

	result := &DeleteResult{Card: *deleted}

	key, err := s.objects.KeyFromURL(cached.ImageURL)
	if err != nil {
		result.CleanupErr = fmt.Errorf("derive storage key: %w", err)
	} else if err := s.objects.Delete(ctx, key); err != nil {
		result.CleanupErr = fmt.Errorf("remove object %s: %w", key, err)
	}
	if result.CleanupErr != nil {
		// Row is already gone; a leaked object is the lesser failure.
		log.Warn().Err(result.CleanupErr).Str("card_id", id).Msg("row deleted, binary cleanup failed")
	}

	s.catalog.Remove(id)

	log.Info().Str("card_id", id).Msg("card deleted")
	return result, nil
}
