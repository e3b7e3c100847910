package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"auction-house/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

func TestMapErrorToHTTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: auctionerrors.ErrInvalidEmail, wantStatus: http.StatusBadRequest},
		{name: "negative_price", err: auctionerrors.ErrNegativeInitialPrice, wantStatus: http.StatusBadRequest},
		{name: "bid_too_low", err: auctionerrors.ErrBidTooLow, wantStatus: http.StatusConflict},
		{name: "credentials", err: auctionerrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "session", err: auctionerrors.ErrSessionNotFound, wantStatus: http.StatusUnauthorized},
		{name: "not_owner", err: auctionerrors.ErrNotOwner, wantStatus: http.StatusForbidden},
		{name: "no_products", err: auctionerrors.ErrNoProducts, wantStatus: http.StatusNotFound},
		{name: "product_not_found", err: auctionerrors.ErrProductNotFound, wantStatus: http.StatusNotFound},
		{name: "no_bids", err: auctionerrors.ErrNoBids, wantStatus: http.StatusNotFound},
		{name: "not_sellable", err: auctionerrors.ErrNotSellable, wantStatus: http.StatusConflict},
		{name: "sold", err: auctionerrors.ErrProductSold, wantStatus: http.StatusConflict},
		{name: "unknown", err: errors.New("db failure"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			status, message := MapErrorToHTTP(fmt.Errorf("service: %w", tc.err))
			require.Equal(t, tc.wantStatus, status)
			require.NotEmpty(t, message)
		})
	}
}
