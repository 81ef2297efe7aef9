package fx

import (
	"fmt"

	"github.com/savdoplus/savdo_backend/internal/apperrors"
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Convert converts amount between USD and UZS using the supplied rate.
// The rate always means "1 USD = rate UZS": USD->UZS multiplies, UZS->USD
// divides. The result is rounded to the target currency's minor unit.
// Rates are never persisted globally; every caller supplies the rate in
// force for its own operation.
func Convert(amount decimal.Decimal, from, to domain.CurrencyCode, rate decimal.Decimal) (decimal.Decimal, error) {
	if !from.Valid() || !to.Valid() {
		return decimal.Zero, fmt.Errorf("%w: unsupported currency pair %s/%s", apperrors.ErrValidation, from, to)
	}
	if from == to {
		return amount.Round(to.Precision()), nil
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: rate must be positive, got %s", apperrors.ErrInvalidRate, rate)
	}

	if from == domain.CurrencyUSD {
		return amount.Mul(rate).Round(to.Precision()), nil
	}
	return amount.Div(rate).Round(to.Precision()), nil
}

// Derive computes the (USD, UZS) pair stored on a transaction at write time.
// When no rate is supplied only the native-currency figure is populated; the
// cross-currency figure stays zero rather than being back-filled later with
// a rate the transaction never saw.
func Derive(amount decimal.Decimal, currency domain.CurrencyCode, rate *decimal.Decimal) (usd, uzs decimal.Decimal, err error) {
	switch currency {
	case domain.CurrencyUSD:
		usd = amount.Round(domain.CurrencyUSD.Precision())
		if rate != nil {
			uzs, err = Convert(amount, domain.CurrencyUSD, domain.CurrencyUZS, *rate)
		}
	case domain.CurrencyUZS:
		uzs = amount.Round(domain.CurrencyUZS.Precision())
		if rate != nil {
			usd, err = Convert(amount, domain.CurrencyUZS, domain.CurrencyUSD, *rate)
		}
	default:
		err = fmt.Errorf("%w: unsupported currency %s", apperrors.ErrValidation, currency)
	}
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return usd, uzs, nil
}
