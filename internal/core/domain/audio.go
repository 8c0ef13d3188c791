package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrAudioNotFound = errors.New("audio not found")

// AudioFormat is the container format of an uploaded session file.
type AudioFormat string

const (
	FormatMP3  AudioFormat = "mp3"
	FormatWAV  AudioFormat = "wav"
	FormatOGG  AudioFormat = "ogg"
	FormatAAC  AudioFormat = "aac"
	FormatM4A  AudioFormat = "m4a"
	FormatFLAC AudioFormat = "flac"
)

// ParseAudioFormat normalizes a raw format string. Empty defaults to mp3.
func ParseAudioFormat(s string) (AudioFormat, error) {
	switch f := AudioFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatMP3, FormatWAV, FormatOGG, FormatAAC, FormatM4A, FormatFLAC:
		return f, nil
	case "":
		return FormatMP3, nil
	}
	return "", fmt.Errorf("unsupported audio format %q", s)
}

// Audio is a catalog entry for a single hypnosis session recording.
// Duration and the play/like counters are never negative.
type Audio struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Title        string      `json:"title" bson:"title"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
	AudioURL     string      `json:"audioUrl" bson:"audio_url"`
	Duration     int         `json:"duration,omitempty" bson:"duration,omitempty"` // seconds
	FileSize     int64       `json:"fileSize,omitempty" bson:"file_size,omitempty"`
	Format       AudioFormat `json:"format" bson:"format"`
	Tags         []string    `json:"tags" bson:"tags"`
	Category     string      `json:"category,omitempty" bson:"category,omitempty"`
	Public       bool        `json:"isPublic" bson:"is_public"`
	UploadedBy   string      `json:"uploadedBy,omitempty" bson:"uploaded_by,omitempty"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty" bson:"thumbnail_url,omitempty"`
	PlayCount    int64       `json:"playCount" bson:"play_count"`
	Likes        int64       `json:"likes" bson:"likes"`
	UploadedAt   time.Time   `json:"uploadedAt" bson:"uploaded_at"`
	UpdatedAt    time.Time   `json:"updatedAt" bson:"updated_at"`
}

// FormattedDuration renders the duration as M:SS. Computed on read, never
// stored, so it can't go stale.
func (a *Audio) FormattedDuration() string {
	if a.Duration <= 0 {
		return ""
	}
	return fmt.Sprintf("%d:%02d", a.Duration/60, a.Duration%60)
}

// NormalizeTags lowercases and trims tags, dropping empties.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// NormalizeCategory lowercases and trims a category name.
func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
