package shared

import (
	"context"

	"equiploan/internal/domain/equipment"
	"equiploan/internal/domain/history"
	"equiploan/internal/domain/request"
	"equiploan/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Equipment() EquipmentRepository
	Requests() RequestRepository
	History() HistoryRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	EquipmentByID(ctx context.Context, id uuid.UUID) (*EquipmentSnapshot, error)
	HistoryEntryByID(ctx context.Context, id uuid.UUID) (*HistorySnapshot, error)
	NotificationByID(ctx context.Context, id uuid.UUID) (*NotificationSnapshot, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, eq *equipment.Equipment) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, eq *equipment.Equipment) error
	// FindForUpdate locks the equipment row for the rest of the transaction.
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*equipment.Equipment, error)
	UpdateQuantity(ctx context.Context, tx db.DBTX, id uuid.UUID, quantity int) error
}

type RequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, req *request.Request) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, req *request.Request) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	// FindForUpdate locks the request row for the rest of the transaction.
	FindForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*request.Request, error)
}

type HistoryRepository interface {
	Append(ctx context.Context, tx db.DBTX, entry *history.Entry) (uuid.UUID, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, message string) (uuid.UUID, error)
	MarkRead(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	DeleteAllForUser(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
