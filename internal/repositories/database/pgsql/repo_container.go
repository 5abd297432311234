package pgsql

import (
	portsrepo "github.com/boighar/backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		SaleRepo:        newPgxSaleRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		DonationRepo:    newPgxDonationRepository(dbPool),
		CapitalRepo:     newPgxCapitalRepository(dbPool),
		TransferRepo:    newPgxTransferRepository(dbPool),
		LedgerRepo:      newPgxLedgerEntryRepository(dbPool),
		ReturnRepo:      newPgxSalesReturnRepository(dbPool),
		PurchaseRepo:    newPgxPurchaseRepository(dbPool),
		OfficeAssetRepo: newPgxOfficeAssetRepository(dbPool),
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		BookRepo:        newPgxBookRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
