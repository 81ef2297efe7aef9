package dto

import (
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDealerRequest registers a dealer with the finance core. Debt starts
// at zero in both currencies.
type CreateDealerRequest struct {
	Name  string `json:"name" binding:"required,max=255"`
	Phone string `json:"phone" binding:"omitempty,max=32"`
}

// DealerResponse is the full dealer record as the ledger sees it.
type DealerResponse struct {
	DealerID string          `json:"dealerID"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone,omitempty"`
	IsActive bool            `json:"isActive"`
	DebtUSD  decimal.Decimal `json:"debtUSD"`
	DebtUZS  decimal.Decimal `json:"debtUZS"`
}

// ToDealerResponse converts a domain dealer to its response DTO.
func ToDealerResponse(d *domain.Dealer) DealerResponse {
	return DealerResponse{
		DealerID: d.DealerID,
		Name:     d.Name,
		Phone:    d.Phone,
		IsActive: d.IsActive,
		DebtUSD:  d.DebtUSD,
		DebtUZS:  d.DebtUZS,
	}
}

// DealerCurrencyDebtResponse reports the outstanding debt in one currency.
type DealerCurrencyDebtResponse struct {
	DealerID     string          `json:"dealerID"`
	CurrencyCode string          `json:"currencyCode"`
	Debt         decimal.Decimal `json:"debt"`
}

// DealerDebtResponse is the dealer collaborator's read surface.
type DealerDebtResponse struct {
	DealerID string          `json:"dealerID"`
	Name     string          `json:"name"`
	DebtUSD  decimal.Decimal `json:"debtUSD"`
	DebtUZS  decimal.Decimal `json:"debtUZS"`
}

// ToDealerDebtResponse converts a domain dealer to its debt view.
func ToDealerDebtResponse(d *domain.Dealer) DealerDebtResponse {
	return DealerDebtResponse{
		DealerID: d.DealerID,
		Name:     d.Name,
		DebtUSD:  d.DebtUSD,
		DebtUZS:  d.DebtUZS,
	}
}
