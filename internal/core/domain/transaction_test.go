package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    TransactionStatus
		to      TransactionStatus
		allowed bool
	}{
		{StatusDraft, StatusPending, true},
		{StatusDraft, StatusApproved, true},
		{StatusDraft, StatusRejected, true},
		{StatusDraft, StatusCancelled, false},
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusPending, false},
		{StatusApproved, StatusCancelled, true},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusCancelled, StatusApproved, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransactionStatus_Terminal(t *testing.T) {
	assert.False(t, StatusDraft.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestTransaction_SignedEffect(t *testing.T) {
	amount := decimal.NewFromInt(250)

	credits := []TransactionType{TypeIncome, TypeOpeningBalance, TypeExchangeIn}
	for _, typ := range credits {
		txn := Transaction{TransactionType: typ, Amount: amount}
		assert.True(t, txn.SignedEffect().Equal(amount), "%s should credit", typ)
	}

	debits := []TransactionType{TypeExpense, TypeExchangeOut}
	for _, typ := range debits {
		txn := Transaction{TransactionType: typ, Amount: amount}
		assert.True(t, txn.SignedEffect().Equal(amount.Neg()), "%s should debit", typ)
	}
}

func TestDealer_Debt(t *testing.T) {
	d := Dealer{
		DebtUSD: decimal.NewFromInt(80000),
		DebtUZS: decimal.NewFromInt(120000),
	}
	assert.True(t, d.Debt(CurrencyUSD).Equal(decimal.NewFromInt(80000)))
	assert.True(t, d.Debt(CurrencyUZS).Equal(decimal.NewFromInt(120000)))
}
