package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mindreboot/mindreboot-api/internal/api/metrics"
	"github.com/mindreboot/mindreboot-api/internal/api/middleware"
	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

// AudioHandler handles HTTP requests for the audio catalog.
type AudioHandler struct {
	catalog ports.CatalogService
}

func NewAudioHandler(catalog ports.CatalogService) *AudioHandler {
	return &AudioHandler{catalog: catalog}
}

// List handles GET /api/audios.
//
// @Summary      List public catalog audios
// @Tags         audios
// @Produce      json
// @Param        page      query     int     false  "1-based page number"
// @Param        limit     query     int     false  "page size (default 20, max 100)"
// @Param        category  query     string  false  "category filter; 'all' disables the filter"
// @Param        search    query     string  false  "free-text search across title, description and tags"
// @Success      200       {object}  listAudiosResponse
// @Router       /api/audios [get]
func (h *AudioHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.catalog.List(c.Request().Context(), ports.ListAudiosInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListAudiosResponse(result))
}

// Get handles GET /api/audios/:id.
//
// @Summary      Get a single audio
// @Tags         audios
// @Produce      json
// @Param        id   path      string  true  "Audio id"
// @Success      200  {object}  audioResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/audios/{id} [get]
func (h *AudioHandler) Get(c echo.Context) error {
	audio, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAudioNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "audio not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toAudioResponse(audio))
}

// Create handles POST /api/audios (admin only).
//
// @Summary      Create a catalog audio
// @Tags         audios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAudioRequest  true  "Audio details"
// @Success      201   {object}  audioResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/audios [post]
func (h *AudioHandler) Create(c echo.Context) error {
	var req createAudioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	audio, err := h.catalog.Create(c.Request().Context(), toCreateAudioInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAudioResponse(audio))
}

// Update handles PUT /api/audios/:id (admin only).
//
// @Summary      Update a catalog audio
// @Tags         audios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Audio id"
// @Param        body  body      updateAudioRequest  true  "Audio details"
// @Success      200   {object}  audioResponse
// @Failure      404   {object}  map[string]string
// @Router       /api/audios/{id} [put]
func (h *AudioHandler) Update(c echo.Context) error {
	var req updateAudioRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	audio, err := h.catalog.Update(c.Request().Context(), c.Param("id"), toUpdateAudioInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrAudioNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "audio not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toAudioResponse(audio))
}

// Delete handles DELETE /api/audios/:id (admin only).
//
// @Summary      Delete a catalog audio
// @Tags         audios
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Audio id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/audios/{id} [delete]
func (h *AudioHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrAudioNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "audio not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Audio deleted successfully"})
}

// Play handles POST /api/audios/:id/play. The listener key for repeat-play
// suppression is the authenticated user when present, otherwise the remote
// address.
//
// @Summary      Record a play
// @Tags         audios
// @Produce      json
// @Param        id   path      string  true  "Audio id"
// @Success      200  {object}  counterResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/audios/{id}/play [post]
func (h *AudioHandler) Play(c echo.Context) error {
	listener, _ := c.Get(middleware.CtxUserID).(string)
	if listener == "" {
		listener = c.RealIP()
	}

	count, err := h.catalog.RecordPlay(c.Request().Context(), c.Param("id"), listener)
	if err != nil {
		if errors.Is(err, domain.ErrAudioNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "audio not found"})
		}
		return err
	}

	metrics.PlaysTotal.Inc()
	return c.JSON(http.StatusOK, counterResponse{PlayCount: &count})
}

// Like handles POST /api/audios/:id/like.
//
// @Summary      Record a like
// @Tags         audios
// @Produce      json
// @Param        id   path      string  true  "Audio id"
// @Success      200  {object}  counterResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/audios/{id}/like [post]
func (h *AudioHandler) Like(c echo.Context) error {
	count, err := h.catalog.RecordLike(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrAudioNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "audio not found"})
		}
		return err
	}

	metrics.LikesTotal.Inc()
	return c.JSON(http.StatusOK, counterResponse{Likes: &count})
}

// Seed handles POST /api/seed (admin only). It replaces the catalog with
// the bundled sample set; being destructive, it sits behind the admin gate.
//
// @Summary      Seed the catalog with sample audios
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  seedResponse
// @Router       /api/seed [post]
func (h *AudioHandler) Seed(c echo.Context) error {
	count, err := h.catalog.Seed(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, seedResponse{
		Success: true,
		Message: "Successfully seeded " + strconv.Itoa(count) + " sample audios",
		Count:   count,
	})
}
