package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/wish"
)

// WishHandler serves the player-facing wish endpoints
type WishHandler struct {
	service wish.Service
}

// NewWishHandler creates a new wish handler
func NewWishHandler(service wish.Service) *WishHandler {
	return &WishHandler{service: service}
}

// PullRequest is the body of POST /api/v1/wish/pull
type PullRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=100"`
	BannerID string `json:"banner_id" validate:"required,max=100"`
	Times    int    `json:"times" validate:"required,oneof=1 10"`
}

// SetWishTargetRequest is the body of POST /api/v1/wish/target. ItemID 0 clears the target.
type SetWishTargetRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=100"`
	BannerID string `json:"banner_id" validate:"required,max=100"`
	ItemID   int    `json:"item_id" validate:"min=0"`
}

// SimulateRequest is the body of POST /api/v1/wish/simulate
type SimulateRequest struct {
	BannerID   string `json:"banner_id" validate:"required,max=100"`
	Trials     int    `json:"trials" validate:"required,min=1,max=100000"`
	Pulls      int    `json:"pulls" validate:"required,min=1,max=2000"`
	WishItemID int    `json:"wish_item_id" validate:"min=0"`
	Seed       uint64 `json:"seed"`
}

// HistoryResponse wraps a page of wish history
type HistoryResponse struct {
	PlayerID string              `json:"player_id"`
	Records  []domain.WishRecord `json:"records"`
}

// HandlePull draws one or ten items
// @Summary Pull on a banner
// @Description Draws 1 or 10 items for the player and persists the updated pity counters
// @Tags wish
// @Accept json
// @Produce json
// @Param request body PullRequest true "Pull request"
// @Success 200 {object} domain.PullResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/wish/pull [post]
func (h *WishHandler) HandlePull(w http.ResponseWriter, r *http.Request) {
	var req PullRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpPull); err != nil {
		return
	}

	res, err := h.service.Pull(r.Context(), req.PlayerID, req.BannerID, req.Times)
	if err != nil {
		respondServiceError(w, r, OpPull, err)
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// HandleSetWishTarget selects the epitomized item of a weapon banner
// @Summary Set the epitomized wish target
// @Description Picks a featured 5-star of a weapon banner; changing the target resets fate points
// @Tags wish
// @Accept json
// @Produce json
// @Param request body SetWishTargetRequest true "Target request"
// @Success 200 {object} domain.PlayerBannerState
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wish/target [post]
func (h *WishHandler) HandleSetWishTarget(w http.ResponseWriter, r *http.Request) {
	var req SetWishTargetRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSetWishTarget); err != nil {
		return
	}

	state, err := h.service.SetWishTarget(r.Context(), req.PlayerID, req.BannerID, req.ItemID)
	if err != nil {
		respondServiceError(w, r, OpSetWishTarget, err)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// HandleGetInfo returns the player's counters on every banner type
// @Summary Get gacha info
// @Tags wish
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.PlayerGachaInfo
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/wish/info [get]
func (h *WishHandler) HandleGetInfo(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}

	info, err := h.service.GetInfo(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, OpGetInfo, err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

// HandleGetHistory returns the player's newest wish records
// @Summary Get wish history
// @Tags wish
// @Produce json
// @Param player_id query string true "Player ID"
// @Param banner_type query string false "standard, character or weapon"
// @Param limit query int false "Maximum records (default 20, max 500)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/wish/history [get]
func (h *WishHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "player_id")
	if !ok {
		return
	}
	limit, ok := GetOptionalIntQueryParam(r, w, "limit", 0, ErrMsgInvalidLimit)
	if !ok {
		return
	}
	rawType := GetOptionalQueryParam(r, "banner_type", "")
	if err := GetValidator().ValidateVar(rawType, "banner_type"); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidBannerQuery)
		return
	}
	bannerType := domain.BannerType(rawType)

	records, err := h.service.GetHistory(r.Context(), playerID, bannerType, limit)
	if err != nil {
		respondServiceError(w, r, OpGetHistory, err)
		return
	}
	if records == nil {
		records = []domain.WishRecord{}
	}

	respondJSON(w, http.StatusOK, HistoryResponse{PlayerID: playerID, Records: records})
}

// HandleListBanners lists every loaded banner
// @Summary List banners
// @Tags wish
// @Produce json
// @Param active query bool false "Only banners running now"
// @Success 200 {array} domain.BannerSummary
// @Router /api/v1/banners [get]
func (h *WishHandler) HandleListBanners(w http.ResponseWriter, r *http.Request) {
	list := h.service.ListBanners(r.Context())

	if onlyActive, _ := strconv.ParseBool(r.URL.Query().Get("active")); onlyActive {
		active := make([]domain.BannerSummary, 0, len(list))
		for _, b := range list {
			if b.Active {
				active = append(active, b)
			}
		}
		list = active
	}

	respondJSON(w, http.StatusOK, list)
}

// HandleSimulate runs a Monte Carlo estimate of a banner's odds
// @Summary Simulate wishes
// @Description Runs the draw engine from a fresh state for each trial and reports distribution statistics
// @Tags wish
// @Accept json
// @Produce json
// @Param request body SimulateRequest true "Simulation request"
// @Success 200 {object} wish.SimulationStats
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wish/simulate [post]
func (h *WishHandler) HandleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpSimulate); err != nil {
		return
	}

	params := wish.SimulationParams{
		Trials:        req.Trials,
		PullsPerTrial: req.Pulls,
		WishItemID:    req.WishItemID,
	}
	stats, err := h.service.Simulate(r.Context(), req.BannerID, params, req.Seed)
	if err != nil {
		respondServiceError(w, r, OpSimulate, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
