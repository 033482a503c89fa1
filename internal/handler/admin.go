package handler

import (
	"context"
	"net/http"

	"github.com/osse101/WishBot_Go/internal/wish"
)

// BannerReloader re-reads the banner definitions
type BannerReloader interface {
	Reload(ctx context.Context) (int, error)
}

// ReloadResponse reports the outcome of a banner reload
type ReloadResponse struct {
	Message string `json:"message"`
	Banners int    `json:"banners"`
}

// AdminHandler handles admin operations
type AdminHandler struct {
	service wish.Service
	banners BannerReloader
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service wish.Service, banners BannerReloader) *AdminHandler {
	return &AdminHandler{service: service, banners: banners}
}

// HandleReloadBanners re-reads the banner directory. A broken file keeps the current set.
// @Summary Reload banners
// @Description Re-reads banner definitions from disk (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/admin/banners/reload [post]
func (h *AdminHandler) HandleReloadBanners(w http.ResponseWriter, r *http.Request) {
	n, err := h.banners.Reload(r.Context())
	if err != nil {
		respondServiceError(w, r, OpReloadBanners, err)
		return
	}

	respondJSON(w, http.StatusOK, ReloadResponse{Message: MsgBannersReloadedSuccess, Banners: n})
}

// HandleGetCacheStats returns current player cache statistics
// @Summary Get player cache stats
// @Description Returns cache hit/miss statistics for monitoring (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} wish.CacheStats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.CacheStats())
}
