package ports

import (
	"context"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

// ListAudiosInput carries all parameters for the catalog list endpoint.
type ListAudiosInput struct {
	Category string // exact match after normalization; "all" or "" = no filter
	Search   string // case-insensitive substring across title, description, tags
	Page     int    // 1-based
	Limit    int    // default 20, capped at 100 by the service
	// IncludeHidden returns non-public items too; reserved for admin listings.
	IncludeHidden bool
}

// ListAudiosResult is the paginated catalog page.
type ListAudiosResult struct {
	Items      []*domain.Audio
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// CreateAudioInput carries the fields accepted for an admin upload.
type CreateAudioInput struct {
	Title        string
	Description  string
	AudioURL     string
	Duration     int
	FileSize     int64
	Format       string
	Tags         []string
	Category     string
	Public       *bool // nil = default true
	UploadedBy   string
	ThumbnailURL string
}

// UpdateAudioInput carries the fields accepted for an admin edit.
type UpdateAudioInput struct {
	Title        string
	Description  string
	AudioURL     string
	Duration     int
	FileSize     int64
	Format       string
	Tags         []string
	Category     string
	Public       *bool
	ThumbnailURL string
}

// CatalogService defines use-case operations over the audio catalog.
type CatalogService interface {
	List(ctx context.Context, input ListAudiosInput) (*ListAudiosResult, error)
	Get(ctx context.Context, id string) (*domain.Audio, error)
	Create(ctx context.Context, input CreateAudioInput) (*domain.Audio, error)
	Update(ctx context.Context, id string, input UpdateAudioInput) (*domain.Audio, error)
	Delete(ctx context.Context, id string) error
	// RecordPlay and RecordLike are best-effort counter increments.
	// listener identifies the caller (user id or remote address) for
	// repeat-play suppression; it may be empty.
	RecordPlay(ctx context.Context, id, listener string) (int64, error)
	RecordLike(ctx context.Context, id string) (int64, error)
	// Seed replaces the catalog with the bundled sample set and returns
	// the number of items inserted.
	Seed(ctx context.Context) (int, error)
}
