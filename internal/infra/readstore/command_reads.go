package readstore

import (
	"context"

	"barberpro/internal/infra"
	"barberpro/internal/infra/db"
	"barberpro/internal/pkg/pgconv"
	"barberpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the lookups command handlers need before or inside a
// transaction. Bound to a DBTX it runs against the pool outside transactions
// and against the live pgx.Tx inside one.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const q = `
		SELECT id, name, email, role, shop_id, commission, is_active
		FROM users
		WHERE id = $1`

	var (
		snap   shared.UserSnapshot
		shopID pgtype.UUID
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.Name, &snap.Email, &snap.Role, &shopID, &snap.Commission, &snap.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read user", err)
	}
	snap.ShopID = pgconv.UUIDPtrFromPgtype(shopID)
	return &snap, nil
}

func (r *CommandReads) CredentialsByEmail(ctx context.Context, email string) (*shared.CredentialsSnapshot, error) {
	const q = `
		SELECT id, password_hash, role, is_active
		FROM users
		WHERE email = $1`

	var snap shared.CredentialsSnapshot
	err := r.db.QueryRow(ctx, q, email).Scan(&snap.ID, &snap.PasswordHash, &snap.Role, &snap.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("credentials not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read credentials", err)
	}
	return &snap, nil
}

func (r *CommandReads) ShopByInviteCode(ctx context.Context, code string) (*shared.ShopSnapshot, error) {
	const q = `
		SELECT id, name, owner_id, invite_code
		FROM shops
		WHERE invite_code = $1`

	var snap shared.ShopSnapshot
	err := r.db.QueryRow(ctx, q, code).Scan(&snap.ID, &snap.Name, &snap.OwnerID, &snap.InviteCode)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read shop", err)
	}
	return &snap, nil
}

// CustomerByName resolves a walk-in's record by exact name within the shop,
// matching how the booking flow decides between reusing and creating a
// customer.
func (r *CommandReads) CustomerByName(ctx context.Context, shopID uuid.UUID, name string) (*shared.CustomerSnapshot, error) {
	const q = `
		SELECT c.id, c.name, c.phone, c.responsible_barber_id, c.total_spent_cents, c.last_visit
		FROM customers c
		JOIN users b ON b.id = c.responsible_barber_id
		WHERE b.shop_id = $1 AND lower(c.name) = lower($2)
		LIMIT 1`

	var snap shared.CustomerSnapshot
	err := r.db.QueryRow(ctx, q, shopID, name).Scan(
		&snap.ID, &snap.Name, &snap.Phone, &snap.ResponsibleBarberID, &snap.TotalSpentCents, &snap.LastVisit,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read customer", err)
	}
	return &snap, nil
}

// CustomerByID reads a customer scoped to the shop, so ids belonging to
// another shop resolve the same way as unknown ones.
func (r *CommandReads) CustomerByID(ctx context.Context, shopID, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	const q = `
		SELECT c.id, c.name, c.phone, c.responsible_barber_id, c.total_spent_cents, c.last_visit
		FROM customers c
		JOIN users b ON b.id = c.responsible_barber_id
		WHERE b.shop_id = $1 AND c.id = $2`

	var snap shared.CustomerSnapshot
	err := r.db.QueryRow(ctx, q, shopID, id).Scan(
		&snap.ID, &snap.Name, &snap.Phone, &snap.ResponsibleBarberID, &snap.TotalSpentCents, &snap.LastVisit,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read customer", err)
	}
	return &snap, nil
}

func (r *CommandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	const q = `
		SELECT id, customer_id, barber_id, service_name, price_cents, scheduled_at, status
		FROM appointments
		WHERE id = $1`

	var snap shared.AppointmentSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.CustomerID, &snap.BarberID, &snap.ServiceName,
		&snap.PriceCents, &snap.ScheduledAt, &snap.Status,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read appointment", err)
	}
	return &snap, nil
}
