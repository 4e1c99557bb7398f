package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPasetoMaker(t *testing.T) {
	maker, err := NewPasetoMaker("01234567890123456789012345678901")
	require.NoError(t, err)

	created, err := maker.CreateToken("storefront", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, created)

	payload, err := maker.VerifyToken(created)
	require.NoError(t, err)
	require.Equal(t, "storefront", payload.Subject)
	require.WithinDuration(t, time.Now().Add(time.Minute), payload.ExpiredAt, time.Second)
}

func TestPasetoMaker_ExpiredToken(t *testing.T) {
	maker, err := NewPasetoMaker("01234567890123456789012345678901")
	require.NoError(t, err)

	created, err := maker.CreateToken("storefront", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(created)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestPasetoMaker_InvalidKeySize(t *testing.T) {
	_, err := NewPasetoMaker("short-key")
	require.Error(t, err)
}

func TestPasetoMaker_TamperedToken(t *testing.T) {
	maker, err := NewPasetoMaker("01234567890123456789012345678901")
	require.NoError(t, err)

	_, err = maker.VerifyToken("v2.local.garbage")
	require.ErrorIs(t, err, ErrInvalidToken)
}
