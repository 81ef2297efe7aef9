package fx_test

import (
	"testing"

	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/utils/fx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_USDToUZS(t *testing.T) {
	rate := decimal.NewFromInt(12500)

	got, err := fx.Convert(decimal.NewFromInt(100), domain.CurrencyUSD, domain.CurrencyUZS, rate)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1250000)), "got %s", got)
}

func TestConvert_UZSToUSD(t *testing.T) {
	rate := decimal.NewFromInt(12500)

	got, err := fx.Convert(decimal.NewFromInt(1250000), domain.CurrencyUZS, domain.CurrencyUSD, rate)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), "got %s", got)
}

func TestConvert_RoundsToMinorUnit(t *testing.T) {
	rate := decimal.NewFromInt(12650)

	// 10000 UZS / 12650 = 0.79051... USD -> 0.79
	got, err := fx.Convert(decimal.NewFromInt(10000), domain.CurrencyUZS, domain.CurrencyUSD, rate)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.79")), "got %s", got)
}

func TestConvert_SameCurrencyIsIdentity(t *testing.T) {
	amount := decimal.RequireFromString("42.42")

	got, err := fx.Convert(amount, domain.CurrencyUSD, domain.CurrencyUSD, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, got.Equal(amount))
}

func TestConvert_NonPositiveRate(t *testing.T) {
	for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		_, err := fx.Convert(decimal.NewFromInt(100), domain.CurrencyUSD, domain.CurrencyUZS, rate)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
	}
}

func TestConvert_UnknownCurrency(t *testing.T) {
	_, err := fx.Convert(decimal.NewFromInt(1), domain.CurrencyCode("EUR"), domain.CurrencyUZS, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestDerive_WithRate(t *testing.T) {
	rate := decimal.NewFromInt(12500)

	usd, uzs, err := fx.Derive(decimal.NewFromInt(200), domain.CurrencyUSD, &rate)
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(200)))
	assert.True(t, uzs.Equal(decimal.NewFromInt(2500000)))

	usd, uzs, err = fx.Derive(decimal.NewFromInt(50000), domain.CurrencyUZS, &rate)
	require.NoError(t, err)
	assert.True(t, uzs.Equal(decimal.NewFromInt(50000)))
	assert.True(t, usd.Equal(decimal.NewFromInt(4)))
}

func TestDerive_WithoutRate(t *testing.T) {
	usd, uzs, err := fx.Derive(decimal.NewFromInt(75), domain.CurrencyUSD, nil)
	require.NoError(t, err)
	assert.True(t, usd.Equal(decimal.NewFromInt(75)))
	assert.True(t, uzs.IsZero(), "cross-currency figure must stay zero without a rate")
}

func TestDerive_InvalidRate(t *testing.T) {
	bad := decimal.NewFromInt(-5)
	_, _, err := fx.Derive(decimal.NewFromInt(10), domain.CurrencyUSD, &bad)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRate)
}
