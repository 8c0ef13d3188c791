package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createAudioRequest struct {
	Title        string   `json:"title"        validate:"required,max=200"`
	Description  string   `json:"description"  validate:"max=1000"`
	AudioURL     string   `json:"audioUrl"     validate:"required"`
	Duration     int      `json:"duration"     validate:"gte=0"`
	FileSize     int64    `json:"fileSize"     validate:"gte=0"`
	Format       string   `json:"format"       validate:"omitempty,oneof=mp3 wav ogg aac m4a flac"`
	Tags         []string `json:"tags"`
	Category     string   `json:"category"`
	IsPublic     *bool    `json:"isPublic"`
	UploadedBy   string   `json:"uploadedBy"`
	ThumbnailURL string   `json:"thumbnailUrl"`
}

type updateAudioRequest struct {
	Title        string   `json:"title"        validate:"required,max=200"`
	Description  string   `json:"description"  validate:"max=1000"`
	AudioURL     string   `json:"audioUrl"     validate:"required"`
	Duration     int      `json:"duration"     validate:"gte=0"`
	FileSize     int64    `json:"fileSize"     validate:"gte=0"`
	Format       string   `json:"format"       validate:"omitempty,oneof=mp3 wav ogg aac m4a flac"`
	Tags         []string `json:"tags"`
	Category     string   `json:"category"`
	IsPublic     *bool    `json:"isPublic"`
	ThumbnailURL string   `json:"thumbnailUrl"`
}

// audioResponse is the transport view of a catalog item. formattedDuration
// is derived on the way out, never stored.
type audioResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	AudioURL          string    `json:"audioUrl"`
	Duration          int       `json:"duration,omitempty"`
	FormattedDuration string    `json:"formattedDuration,omitempty"`
	FileSize          int64     `json:"fileSize,omitempty"`
	Format            string    `json:"format"`
	Tags              []string  `json:"tags"`
	Category          string    `json:"category,omitempty"`
	IsPublic          bool      `json:"isPublic"`
	UploadedBy        string    `json:"uploadedBy,omitempty"`
	ThumbnailURL      string    `json:"thumbnailUrl,omitempty"`
	PlayCount         int64     `json:"playCount"`
	Likes             int64     `json:"likes"`
	UploadedAt        time.Time `json:"uploadedAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type paginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

type listAudiosResponse struct {
	Audios     []audioResponse    `json:"audios"`
	Pagination paginationResponse `json:"pagination"`
}

type counterResponse struct {
	PlayCount *int64 `json:"playCount,omitempty"`
	Likes     *int64 `json:"likes,omitempty"`
}

type seedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}
