package domain

// ExpenseCategory classifies expense transactions.
// Global categories are visible to every operator; non-global ones only to
// their creator. UsageCount is derived from the ledger, never stored.
type ExpenseCategory struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Color      string `json:"color"` // e.g. "#ef4444"
	Icon       string `json:"icon"`
	IsGlobal   bool   `json:"isGlobal"`
	IsActive   bool   `json:"isActive"`
	AuditFields
	UsageCount int64 `json:"usageCount"`
}
