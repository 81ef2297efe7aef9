package services

import (
	portsrepo "github.com/savdoplus/savdo_backend/internal/core/ports/repositories"
	portssvc "github.com/savdoplus/savdo_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.Container) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.Account)
	container.Ledger = NewLedgerService(repos.Transaction, repos.Account, repos.Dealer, repos.Category, repos.Audit)
	container.Transfer = NewTransferService(repos.Transaction, repos.Account, repos.Dealer)
	container.Summary = NewSummaryService(repos.Summary)
	container.Category = NewCategoryService(repos.Category)
	container.Dealer = NewDealerService(repos.Dealer)

	return container
}

// Compile-time checks that each implementation satisfies its facade.
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.LedgerSvcFacade   = (*ledgerService)(nil)
	_ portssvc.TransferSvcFacade = (*transferService)(nil)
	_ portssvc.SummarySvcFacade  = (*summaryService)(nil)
	_ portssvc.CategorySvcFacade = (*categoryService)(nil)
	_ portssvc.DealerSvcFacade   = (*dealerService)(nil)
)
