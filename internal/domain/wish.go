package domain

import (
	"fmt"
	"strings"
	"time"
)

// BannerType identifies which of a player's independent pity tracks a banner uses.
type BannerType string

const (
	BannerTypeStandard  BannerType = "standard"
	BannerTypeCharacter BannerType = "character"
	BannerTypeWeapon    BannerType = "weapon"
)

// ParseBannerType converts user input into a BannerType.
func ParseBannerType(s string) (BannerType, error) {
	switch BannerType(strings.ToLower(strings.TrimSpace(s))) {
	case BannerTypeStandard:
		return BannerTypeStandard, nil
	case BannerTypeCharacter:
		return BannerTypeCharacter, nil
	case BannerTypeWeapon:
		return BannerTypeWeapon, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBannerType, s)
}

// PlayerBannerState holds the pity and guarantee counters of one player on one banner type.
// Every counter is reset to 0 exactly when the event it counts towards happens.
type PlayerBannerState struct {
	Pity5                    int `json:"pity5"`
	Pity4                    int `json:"pity4"`
	Pity4Pool1               int `json:"pity4_pool1"`
	Pity4Pool2               int `json:"pity4_pool2"`
	Pity5Pool1               int `json:"pity5_pool1"`
	Pity5Pool2               int `json:"pity5_pool2"`
	WishItemID               int `json:"wish_item_id"`
	FailedChosenItemPulls    int `json:"failed_chosen_item_pulls"`
	FailedFeatured4ItemPulls int `json:"failed_featured4_item_pulls"`
	FailedFeaturedItemPulls  int `json:"failed_featured_item_pulls"`
	TotalPulls               int `json:"total_pulls"`
}

// IncPityAll bumps the rarity pities and every sub-pool pity by one.
func (s *PlayerBannerState) IncPityAll() {
	s.Pity5++
	s.Pity4++
	s.Pity5Pool1++
	s.Pity5Pool2++
	s.Pity4Pool1++
	s.Pity4Pool2++
}

// FailedFeatured returns the featured-loss counter for rarity 4 or 5.
func (s *PlayerBannerState) FailedFeatured(rarity int) int {
	if rarity == 5 {
		return s.FailedFeaturedItemPulls
	}
	return s.FailedFeatured4ItemPulls
}

// SetFailedFeatured sets the featured-loss counter for rarity 4 or 5.
func (s *PlayerBannerState) SetFailedFeatured(rarity, v int) {
	if rarity == 5 {
		s.FailedFeaturedItemPulls = v
		return
	}
	s.FailedFeatured4ItemPulls = v
}

// PoolPity returns the sub-pool pity for rarity 4 or 5 and pool 1 or 2.
func (s *PlayerBannerState) PoolPity(rarity, pool int) int {
	switch {
	case rarity == 5 && pool == 1:
		return s.Pity5Pool1
	case rarity == 5:
		return s.Pity5Pool2
	case pool == 1:
		return s.Pity4Pool1
	default:
		return s.Pity4Pool2
	}
}

// SetPoolPity sets the sub-pool pity for rarity 4 or 5 and pool 1 or 2.
func (s *PlayerBannerState) SetPoolPity(rarity, pool, v int) {
	switch {
	case rarity == 5 && pool == 1:
		s.Pity5Pool1 = v
	case rarity == 5:
		s.Pity5Pool2 = v
	case pool == 1:
		s.Pity4Pool1 = v
	default:
		s.Pity4Pool2 = v
	}
}

// PlayerGachaInfo owns one independent state per banner type.
type PlayerGachaInfo struct {
	StandardBanner       PlayerBannerState `json:"standard_banner"`
	EventWeaponBanner    PlayerBannerState `json:"event_weapon_banner"`
	EventCharacterBanner PlayerBannerState `json:"event_character_banner"`
}

// NewPlayerGachaInfo returns zero-initialized gacha info for a player seen for the first time.
func NewPlayerGachaInfo() *PlayerGachaInfo {
	return &PlayerGachaInfo{}
}

// Clone returns a copy that shares nothing with the receiver.
func (p *PlayerGachaInfo) Clone() *PlayerGachaInfo {
	if p == nil {
		return NewPlayerGachaInfo()
	}
	c := *p
	return &c
}

// WishRecord is one entry of a player's wish history.
type WishRecord struct {
	PlayerID   string     `json:"player_id"`
	BannerID   string     `json:"banner_id"`
	BannerType BannerType `json:"banner_type"`
	ItemID     int        `json:"item_id"`
	Rarity     int        `json:"rarity"`
	PulledAt   time.Time  `json:"pulled_at"`
}

// PulledItem is a single resolved pull as returned to callers.
type PulledItem struct {
	ItemID int `json:"item_id"`
	Rarity int `json:"rarity"`
}

// PullResult is the outcome of a single or ten-pull batch.
type PullResult struct {
	PlayerID   string            `json:"player_id"`
	BannerID   string            `json:"banner_id"`
	BannerType BannerType        `json:"banner_type"`
	Items      []PulledItem      `json:"items"`
	State      PlayerBannerState `json:"state"`
}

// BannerSummary describes a banner for listing endpoints.
type BannerSummary struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	BannerType      BannerType `json:"banner_type"`
	GachaType       int        `json:"gacha_type"`
	ScheduleID      int        `json:"schedule_id"`
	RateUpItems5    []int      `json:"rate_up_items5"`
	RateUpItems4    []int      `json:"rate_up_items4"`
	WishMaxProgress int        `json:"wish_max_progress,omitempty"`
	BeginTime       *time.Time `json:"begin_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	Active          bool       `json:"active"`
}
