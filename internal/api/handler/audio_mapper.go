package handler

import (
	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

func toAudioResponse(a *domain.Audio) audioResponse {
	return audioResponse{
		ID:                a.ID,
		Title:             a.Title,
		Description:       a.Description,
		AudioURL:          a.AudioURL,
		Duration:          a.Duration,
		FormattedDuration: a.FormattedDuration(),
		FileSize:          a.FileSize,
		Format:            string(a.Format),
		Tags:              a.Tags,
		Category:          a.Category,
		IsPublic:          a.Public,
		UploadedBy:        a.UploadedBy,
		ThumbnailURL:      a.ThumbnailURL,
		PlayCount:         a.PlayCount,
		Likes:             a.Likes,
		UploadedAt:        a.UploadedAt.UTC(),
		UpdatedAt:         a.UpdatedAt.UTC(),
	}
}

func toListAudiosResponse(result *ports.ListAudiosResult) listAudiosResponse {
	items := make([]audioResponse, 0, len(result.Items))
	for _, a := range result.Items {
		items = append(items, toAudioResponse(a))
	}
	return listAudiosResponse{
		Audios: items,
		Pagination: paginationResponse{
			Page:  result.Page,
			Limit: result.Limit,
			Total: result.Total,
			Pages: result.TotalPages,
		},
	}
}

func toCreateAudioInput(req createAudioRequest) ports.CreateAudioInput {
	return ports.CreateAudioInput{
		Title:        req.Title,
		Description:  req.Description,
		AudioURL:     req.AudioURL,
		Duration:     req.Duration,
		FileSize:     req.FileSize,
		Format:       req.Format,
		Tags:         req.Tags,
		Category:     req.Category,
		Public:       req.IsPublic,
		UploadedBy:   req.UploadedBy,
		ThumbnailURL: req.ThumbnailURL,
	}
}

func toUpdateAudioInput(req updateAudioRequest) ports.UpdateAudioInput {
	return ports.UpdateAudioInput{
		Title:        req.Title,
		Description:  req.Description,
		AudioURL:     req.AudioURL,
		Duration:     req.Duration,
		FileSize:     req.FileSize,
		Format:       req.Format,
		Tags:         req.Tags,
		Category:     req.Category,
		Public:       req.IsPublic,
		ThumbnailURL: req.ThumbnailURL,
	}
}
