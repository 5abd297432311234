package services

import (
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	portssvc "github.com/boighar/backoffice/internal/core/ports/services"
	"github.com/boighar/backoffice/pkg/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Sale = NewSaleService(repos.SaleRepo, repos.BookRepo, repos.CustomerRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.Funding = NewFundingService(repos.DonationRepo, repos.CapitalRepo)
	container.Transfer = NewTransferService(repos.TransferRepo)
	container.Receivable = NewReceivableService(repos.LedgerRepo)
	container.Return = NewReturnService(repos.ReturnRepo, repos.BookRepo, repos.CustomerRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.BookRepo)
	container.OfficeAsset = NewOfficeAssetService(repos.OfficeAssetRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo, repos.SaleRepo, repos.LedgerRepo, repos.ReturnRepo)
	container.Book = NewBookService(repos.BookRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	container.Snapshot = NewSnapshotService(repos)
	container.Reporting = NewReportingService(repos, container.Snapshot)

	return container
}
