package mapping

import (
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/models"
)

func ToDomainDealer(m models.Dealer) domain.Dealer {
	return domain.Dealer{
		DealerID:    m.DealerID,
		Name:        m.Name,
		Phone:       m.Phone,
		IsActive:    m.IsActive,
		DebtUSD:     m.DebtUSD,
		DebtUZS:     m.DebtUZS,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelDealer(d domain.Dealer) models.Dealer {
	return models.Dealer{
		DealerID:    d.DealerID,
		Name:        d.Name,
		Phone:       d.Phone,
		IsActive:    d.IsActive,
		DebtUSD:     d.DebtUSD,
		DebtUZS:     d.DebtUZS,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}
