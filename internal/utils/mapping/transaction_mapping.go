package mapping

import (
	"github.com/savdoplus/savdo_backend/internal/core/domain"
	"github.com/savdoplus/savdo_backend/internal/models"
)

func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		TransactionType:      string(d.TransactionType),
		AccountID:            d.AccountID,
		RelatedAccountID:     d.RelatedAccountID,
		RelatedTransactionID: d.RelatedTransactionID,
		DealerID:             d.DealerID,
		CategoryID:           d.CategoryID,
		TransactionDate:      d.TransactionDate,
		CurrencyCode:         string(d.CurrencyCode),
		Amount:               d.Amount,
		AmountUSD:            d.AmountUSD,
		AmountUZS:            d.AmountUZS,
		ExchangeRate:         d.ExchangeRate,
		Status:               string(d.Status),
		AppliedAmount:        d.AppliedAmount,
		Comment:              d.Comment,
		ApprovedBy:           d.ApprovedBy,
		ApprovedAt:           d.ApprovedAt,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		TransactionType:      domain.TransactionType(m.TransactionType),
		AccountID:            m.AccountID,
		RelatedAccountID:     m.RelatedAccountID,
		RelatedTransactionID: m.RelatedTransactionID,
		DealerID:             m.DealerID,
		CategoryID:           m.CategoryID,
		TransactionDate:      m.TransactionDate,
		CurrencyCode:         domain.CurrencyCode(m.CurrencyCode),
		Amount:               m.Amount,
		AmountUSD:            m.AmountUSD,
		AmountUZS:            m.AmountUZS,
		ExchangeRate:         m.ExchangeRate,
		Status:               domain.TransactionStatus(m.Status),
		AppliedAmount:        m.AppliedAmount,
		Comment:              m.Comment,
		ApprovedBy:           m.ApprovedBy,
		ApprovedAt:           m.ApprovedAt,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
