package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	StaffRepo        StaffReader
	ClientRepo       ClientRepositoryFacade
	LotRepo          LotRepositoryFacade
	PaymentRepo      PaymentRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	ActivityLogRepo  ActivityLogWriter
	TxManager        TransactionManager
}
