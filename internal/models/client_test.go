package models

import (
	"auction-house/internal/auctionerrors"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// Test NewClient
func TestNewClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		clientName    string
		email         string
		address       string
		password      string
		expectedError error
	}{
		{name: "valid_client", clientName: "Ada Lovelace", email: "ada@example.com", address: "1 Analytical St", password: "engine"},
		{name: "empty_name", clientName: "", email: "ada@example.com", address: "1 Analytical St", password: "engine", expectedError: auctionerrors.ErrEmptyClientName},
		{name: "empty_email", clientName: "Ada", email: "", address: "1 Analytical St", password: "engine", expectedError: auctionerrors.ErrInvalidEmail},
		{name: "email_without_at", clientName: "Ada", email: "ada.example.com", address: "1 Analytical St", password: "engine", expectedError: auctionerrors.ErrInvalidEmail},
		{name: "empty_address", clientName: "Ada", email: "ada@example.com", address: "", password: "engine", expectedError: auctionerrors.ErrEmptyAddress},
		{name: "empty_password", clientName: "Ada", email: "ada@example.com", address: "1 Analytical St", password: "", expectedError: auctionerrors.ErrEmptyPassword},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, err := NewClient(tc.clientName, tc.email, tc.address, tc.password)
			if tc.expectedError != nil {
				require.Nil(t, client)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
				require.True(t, errors.Is(err, auctionerrors.ErrValidation))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.clientName, client.Name())
			require.Equal(t, tc.email, client.Email())
			require.Equal(t, tc.address, client.Address())
			require.Equal(t, tc.password, client.Password())
		})
	}
}

// Invalid values must never be stored
func TestClient_SettersKeepPreviousValue(t *testing.T) {
	t.Parallel()

	client, err := NewClient("Ada", "ada@example.com", "1 Analytical St", "engine")
	require.NoError(t, err)

	require.ErrorIs(t, client.SetName(""), auctionerrors.ErrValidation)
	require.ErrorIs(t, client.SetEmail("nope"), auctionerrors.ErrValidation)
	require.ErrorIs(t, client.SetAddress(""), auctionerrors.ErrValidation)
	require.ErrorIs(t, client.SetPassword(""), auctionerrors.ErrValidation)

	require.Equal(t, "Ada", client.Name())
	require.Equal(t, "ada@example.com", client.Email())
	require.Equal(t, "1 Analytical St", client.Address())
	require.Equal(t, "engine", client.Password())

	require.NoError(t, client.SetEmail("ada@engine.org"))
	require.Equal(t, "ada@engine.org", client.Email())
}

func TestClient_StringAndMatches(t *testing.T) {
	t.Parallel()

	client, err := NewClient("Ada", "ada@example.com", "1 Analytical St", "engine")
	require.NoError(t, err)

	require.Equal(t, "Ada ada@example.com", client.String())
	require.True(t, client.Matches("ada@example.com", "engine"))
	require.False(t, client.Matches("ada@example.com", "wrong"))
	require.False(t, client.Matches("ADA@example.com", "engine"))
}
