package mapping

import (
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/models"
)

// ToModelAccount converts a domain account to its DB model. The derived
// Balance field is deliberately not carried over.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		Name:           d.Name,
		AccountType:    string(d.AccountType),
		CurrencyCode:   string(d.CurrencyCode),
		OpeningBalance: d.OpeningBalance,
		OpeningDate:    d.OpeningDate,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a DB account row to the domain type. Balance must
// be filled in separately by the repository's balance aggregation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Name:           m.Name,
		AccountType:    domain.AccountType(m.AccountType),
		CurrencyCode:   domain.CurrencyCode(m.CurrencyCode),
		OpeningBalance: m.OpeningBalance,
		OpeningDate:    m.OpeningDate,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
