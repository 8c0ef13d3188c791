package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PlayGuard suppresses repeat play counts from the same listener within a
// time window. Implementations are best effort: an unavailable backend
// must fail open so plays are still counted.
type PlayGuard interface {
	// SeenRecently reports whether listener already played audioID inside
	// the guard window, and marks the pair as seen.
	SeenRecently(ctx context.Context, audioID, listener string) (bool, error)
}

// CatalogService implements catalog queries and admin mutations.
type CatalogService struct {
	repo   ports.AudioRepository
	guard  PlayGuard
	logger zerolog.Logger
}

// NewCatalogService creates a CatalogService. guard may be nil, in which
// case every play increments the counter.
func NewCatalogService(repo ports.AudioRepository, guard PlayGuard, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, guard: guard, logger: logger}
}

// List returns one page of the catalog. The "all" category sentinel and an
// empty category both mean "no category filter".
func (s *CatalogService) List(ctx context.Context, input ports.ListAudiosInput) (*ports.ListAudiosResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	category := domain.NormalizeCategory(input.Category)
	if category == "all" {
		category = ""
	}

	items, total, err := s.repo.List(ctx, ports.ListAudiosFilter{
		Category:   category,
		Search:     strings.TrimSpace(input.Search),
		PublicOnly: !input.IncludeHidden,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListAudiosResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
	}, nil
}

func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Get returns a single catalog item by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Audio, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a new catalog item from an admin upload.
func (s *CatalogService) Create(ctx context.Context, input ports.CreateAudioInput) (*domain.Audio, error) {
	audio, err := buildAudio(input.Title, input.AudioURL, input.Description, input.Format,
		input.Tags, input.Category, input.Duration, input.FileSize, input.Public)
	if err != nil {
		return nil, err
	}
	audio.UploadedBy = strings.TrimSpace(input.UploadedBy)
	audio.ThumbnailURL = strings.TrimSpace(input.ThumbnailURL)

	now := time.Now().UTC()
	audio.UploadedAt = now
	audio.UpdatedAt = now

	created, err := s.repo.Insert(ctx, audio)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("audio_id", created.ID).Str("category", created.Category).Msg("audio created")
	return created, nil
}

// Update replaces the mutable fields of an existing catalog item.
func (s *CatalogService) Update(ctx context.Context, id string, input ports.UpdateAudioInput) (*domain.Audio, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	audio, err := buildAudio(input.Title, input.AudioURL, input.Description, input.Format,
		input.Tags, input.Category, input.Duration, input.FileSize, input.Public)
	if err != nil {
		return nil, err
	}
	audio.ID = existing.ID
	audio.UploadedBy = existing.UploadedBy
	audio.ThumbnailURL = strings.TrimSpace(input.ThumbnailURL)
	audio.PlayCount = existing.PlayCount
	audio.Likes = existing.Likes
	audio.UploadedAt = existing.UploadedAt
	audio.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, id, audio)
}

// Delete removes a catalog item.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// RecordPlay bumps the play counter unless the same listener played this
// audio within the guard window. Counters are best effort: guard failures
// are logged and the play is counted anyway.
func (s *CatalogService) RecordPlay(ctx context.Context, id, listener string) (int64, error) {
	if s.guard != nil && listener != "" {
		seen, err := s.guard.SeenRecently(ctx, id, listener)
		if err != nil {
			s.logger.Warn().Err(err).Str("audio_id", id).Msg("play guard unavailable, counting play")
		} else if seen {
			audio, err := s.repo.FindByID(ctx, id)
			if err != nil {
				return 0, err
			}
			return audio.PlayCount, nil
		}
	}
	return s.repo.IncrementPlayCount(ctx, id)
}

// RecordLike bumps the like counter.
func (s *CatalogService) RecordLike(ctx context.Context, id string) (int64, error) {
	return s.repo.IncrementLikes(ctx, id)
}

// Seed replaces the catalog with the bundled sample set.
func (s *CatalogService) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.ReplaceAll(ctx, SampleCatalog())
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int("count", count).Msg("catalog seeded")
	return count, nil
}

func buildAudio(title, audioURL, description, format string, tags []string, category string,
	duration int, fileSize int64, public *bool) (*domain.Audio, error) {

	title = strings.TrimSpace(title)
	audioURL = strings.TrimSpace(audioURL)
	if title == "" || audioURL == "" {
		return nil, domain.ErrValidation("title and audio URL are required")
	}
	if len(title) > 200 {
		return nil, domain.ErrValidation("title cannot exceed 200 characters")
	}
	if len(description) > 1000 {
		return nil, domain.ErrValidation("description cannot exceed 1000 characters")
	}
	if duration < 0 {
		return nil, domain.ErrValidation("duration cannot be negative")
	}
	if fileSize < 0 {
		return nil, domain.ErrValidation("file size cannot be negative")
	}

	f, err := domain.ParseAudioFormat(format)
	if err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	isPublic := true
	if public != nil {
		isPublic = *public
	}

	return &domain.Audio{
		Title:       title,
		Description: strings.TrimSpace(description),
		AudioURL:    audioURL,
		Duration:    duration,
		FileSize:    fileSize,
		Format:      f,
		Tags:        domain.NormalizeTags(tags),
		Category:    domain.NormalizeCategory(category),
		Public:      isPublic,
	}, nil
}
