package mapping

import (
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/models"
)

func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		AuditID:          d.AuditID,
		TransactionID:    d.TransactionID,
		Action:           string(d.Action),
		OldStatus:        d.OldStatus,
		NewStatus:        d.NewStatus,
		OldAmount:        d.OldAmount,
		NewAmount:        d.NewAmount,
		OldAppliedAmount: d.OldAppliedAmount,
		NewAppliedAmount: d.NewAppliedAmount,
		DealerID:         d.DealerID,
		Details:          d.Details,
		ActorID:          d.ActorID,
		CreatedAt:        d.CreatedAt,
	}
}

func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		AuditID:          m.AuditID,
		TransactionID:    m.TransactionID,
		Action:           domain.AuditAction(m.Action),
		OldStatus:        m.OldStatus,
		NewStatus:        m.NewStatus,
		OldAmount:        m.OldAmount,
		NewAmount:        m.NewAmount,
		OldAppliedAmount: m.OldAppliedAmount,
		NewAppliedAmount: m.NewAppliedAmount,
		DealerID:         m.DealerID,
		Details:          m.Details,
		ActorID:          m.ActorID,
		CreatedAt:        m.CreatedAt,
	}
}
