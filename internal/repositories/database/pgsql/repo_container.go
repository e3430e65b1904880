package pgsql

import (
	portsrepo "github.com/SscSPs/memorial_park_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		StaffRepo:        newPgxStaffRepository(dbPool),
		ClientRepo:       newPgxClientRepository(dbPool),
		LotRepo:          newPgxLotRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		ActivityLogRepo:  newPgxActivityLogRepository(dbPool),
		TxManager:        &BaseRepository{Pool: dbPool},
	}
}
