package repositories

// Container groups all repository facades for wiring.
type Container struct {
	Account     AccountRepositoryFacade
	Transaction TransactionRepositoryFacade
	Category    CategoryRepositoryFacade
	Dealer      DealerRepositoryFacade
	Audit       AuditRepositoryFacade
	Summary     SummaryRepositoryFacade
}
