package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WishBot_Go/internal/domain"
)

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"PlayerID":   "player_id",
		"BannerID":   "banner_id",
		"Times":      "times",
		"WishItemID": "wish_item_id",
		"ID":         "id",
	}
	for in, want := range tests {
		assert.Equal(t, want, toSnakeCase(in), in)
	}
}

func TestFormatValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("x")))

	err := GetValidator().ValidateStruct(PullRequest{Times: 3})
	require.Error(t, err)
	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["player_id"])
	assert.Equal(t, "This field is required", fields["banner_id"])
	assert.Equal(t, "Must be one of: 1 10", fields["times"])
}

func TestBannerTypeValidation(t *testing.T) {
	v := GetValidator()
	for _, ok := range []string{"", "standard", "Weapon", " character "} {
		assert.NoError(t, v.ValidateVar(ok, "banner_type"), ok)
	}
	assert.Error(t, v.ValidateVar("limited", "banner_type"))
}

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{domain.ErrPlayerIDRequired, http.StatusBadRequest, ErrMsgPlayerIDRequiredError},
		{fmt.Errorf("%w: 5", domain.ErrInvalidTimes), http.StatusBadRequest, ErrMsgInvalidTimesError},
		{fmt.Errorf("%w: x", domain.ErrBannerNotFound), http.StatusNotFound, ErrMsgBannerNotFoundError},
		{fmt.Errorf("%w: x", domain.ErrBannerInactive), http.StatusConflict, ErrMsgBannerInactiveError},
		{domain.ErrInvalidBannerType, http.StatusBadRequest, ErrMsgInvalidBannerTypeError},
		{domain.ErrInvalidWishTarget, http.StatusBadRequest, ErrMsgInvalidWishTargetError},
		{domain.ErrEpitomizedDisabled, http.StatusBadRequest, ErrMsgEpitomizedDisabledErr},
		{fmt.Errorf("banner w: %w", domain.ErrIllegalArgument), http.StatusInternalServerError, ErrMsgGenericServerError},
		{fmt.Errorf("%w: timeout", domain.ErrDatabaseError), http.StatusInternalServerError, ErrMsgGenericServerError},
		{domain.ErrShuttingDown, http.StatusServiceUnavailable, ErrMsgUnavailableError},
		{context.Canceled, http.StatusServiceUnavailable, ErrMsgRequestCanceled},
		{errors.New("pq: something internal"), http.StatusInternalServerError, ErrMsgGenericServerError},
	}
	for _, tt := range tests {
		status, msg := mapServiceErrorToUserMessage(tt.err)
		assert.Equal(t, tt.status, status, "%v", tt.err)
		assert.Equal(t, tt.msg, msg, "%v", tt.err)
	}
}
