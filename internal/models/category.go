package models

// ExpenseCategory is the expense_categories table row.
type ExpenseCategory struct {
	CategoryID string `db:"category_id"`
	Name       string `db:"name"`
	Color      string `db:"color"`
	Icon       string `db:"icon"`
	IsGlobal   bool   `db:"is_global"`
	IsActive   bool   `db:"is_active"`
	AuditFields
	UsageCount int64 `db:"usage_count"` // derived via COUNT, not a column
}
