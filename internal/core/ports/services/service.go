package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Sale        SaleSvcFacade
	Expense     ExpenseSvcFacade
	Funding     FundingSvcFacade
	Transfer    TransferSvcFacade
	Receivable  ReceivableSvcFacade
	Return      ReturnSvcFacade
	Purchase    PurchaseSvcFacade
	OfficeAsset OfficeAssetSvcFacade
	Customer    CustomerSvcFacade
	Book        BookSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	Snapshot    SnapshotSvcFacade
	Reporting   ReportingSvcFacade
}
