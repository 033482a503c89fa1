package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/wish"
	"github.com/osse101/WishBot_Go/mocks"
)

type fakeReloader struct {
	n   int
	err error
}

func (f fakeReloader) Reload(context.Context) (int, error) { return f.n, f.err }

func TestHandleReloadBanners(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h := NewAdminHandler(mocks.NewMockWishService(t), fakeReloader{n: 4})
		rec := httptest.NewRecorder()
		h.HandleReloadBanners(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners/reload", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgBannersReloadedSuccess)
		assert.Contains(t, rec.Body.String(), `"banners":4`)
	})

	t.Run("Broken definition", func(t *testing.T) {
		err := fmt.Errorf("%w: banner \"w\": event_chance5 must be in [0,100]", domain.ErrInvalidInput)
		h := NewAdminHandler(mocks.NewMockWishService(t), fakeReloader{err: err})
		rec := httptest.NewRecorder()
		h.HandleReloadBanners(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/banners/reload", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidInputError)
	})
}

func TestHandleGetCacheStats(t *testing.T) {
	svc := mocks.NewMockWishService(t)
	svc.On("CacheStats").Return(wish.CacheStats{Size: 3, Hits: 9, Misses: 3, HitRate: 0.75})

	rec := httptest.NewRecorder()
	NewAdminHandler(svc, fakeReloader{}).HandleGetCacheStats(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/cache/stats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"size":3,"hits":9,"misses":3,"hit_rate":0.75}`, rec.Body.String())
}
