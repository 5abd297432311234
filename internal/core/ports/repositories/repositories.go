package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SaleRepo        SaleRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	DonationRepo    DonationRepositoryFacade
	CapitalRepo     CapitalRepositoryFacade
	TransferRepo    TransferRepositoryFacade
	LedgerRepo      LedgerEntryRepositoryFacade
	ReturnRepo      SalesReturnRepositoryFacade
	PurchaseRepo    PurchaseRepositoryFacade
	OfficeAssetRepo OfficeAssetRepositoryFacade
	CustomerRepo    CustomerRepositoryFacade
	BookRepo        BookRepositoryFacade
	UserRepo        UserRepositoryFacade
}
