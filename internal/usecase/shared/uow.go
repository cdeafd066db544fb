package shared

import (
	"context"
	"time"

	"barberpro/internal/domain/appointment"
	"barberpro/internal/domain/customer"
	"barberpro/internal/domain/ledger"
	"barberpro/internal/domain/shop"
	"barberpro/internal/domain/user"
	"barberpro/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Shops() ShopRepository
	Customers() CustomerRepository
	Appointments() AppointmentRepository
	Finances() FinanceRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

// Write-side snapshots prevent dependency on read-side view types.
type UserSnapshot struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Role       string
	ShopID     *uuid.UUID
	Commission float64
	IsActive   bool
}

type CredentialsSnapshot struct {
	ID           uuid.UUID
	PasswordHash string
	Role         string
	IsActive     bool
}

type ShopSnapshot struct {
	ID         uuid.UUID
	Name       string
	OwnerID    uuid.UUID
	InviteCode string
}

type CustomerSnapshot struct {
	ID                  uuid.UUID
	Name                string
	Phone               string
	ResponsibleBarberID uuid.UUID
	TotalSpentCents     int64
	LastVisit           time.Time
}

type AppointmentSnapshot struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	BarberID    uuid.UUID
	ServiceName string
	PriceCents  int64
	ScheduledAt time.Time
	Status      string
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	CredentialsByEmail(ctx context.Context, email string) (*CredentialsSnapshot, error)
	ShopByInviteCode(ctx context.Context, code string) (*ShopSnapshot, error)
	CustomerByName(ctx context.Context, shopID uuid.UUID, name string) (*CustomerSnapshot, error)
	CustomerByID(ctx context.Context, shopID, id uuid.UUID) (*CustomerSnapshot, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*AppointmentSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error)
	BindShop(ctx context.Context, tx db.DBTX, userID, shopID uuid.UUID, role user.Role) error
	SetCommission(ctx context.Context, tx db.DBTX, userID uuid.UUID, rate user.Rate) error
}

type ShopRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *shop.Shop) (uuid.UUID, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error)
	RecordVisit(ctx context.Context, tx db.DBTX, customerID uuid.UUID, amountCents int64, at time.Time) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	// TransitionStatus flips an open appointment to a terminal status.
	// Returns false when no open row matched, i.e. the appointment was
	// already COMPLETED or CANCELLED. The guarded UPDATE is what serializes
	// concurrent completions.
	TransitionStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, to appointment.Status) (bool, error)
}

type FinanceRepository interface {
	Create(ctx context.Context, tx db.DBTX, rec *ledger.FinancialRecord) (uuid.UUID, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
