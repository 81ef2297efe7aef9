package mapping

import (
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/models"
)

func ToModelCategory(d domain.ExpenseCategory) models.ExpenseCategory {
	return models.ExpenseCategory{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Color:       d.Color,
		Icon:        d.Icon,
		IsGlobal:    d.IsGlobal,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
		UsageCount:  d.UsageCount,
	}
}

func ToDomainCategory(m models.ExpenseCategory) domain.ExpenseCategory {
	return domain.ExpenseCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Color:       m.Color,
		Icon:        m.Icon,
		IsGlobal:    m.IsGlobal,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
		UsageCount:  m.UsageCount,
	}
}
