//go:build unit

package commands_test

import (
	"context"
	"strings"
	"time"

	"barberpro/internal/domain/appointment"
	"barberpro/internal/domain/customer"
	"barberpro/internal/domain/ledger"
	"barberpro/internal/domain/shop"
	"barberpro/internal/domain/user"
	"barberpro/internal/infra"
	"barberpro/internal/infra/db"
	"barberpro/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory UnitOfWork standing in for postgres. Collision and CAS semantics
// mirror the schema: one live booking per customer+time, transitions only from
// open statuses.
type fakeStore struct {
	users        map[uuid.UUID]*shared.UserSnapshot
	credentials  map[string]*shared.CredentialsSnapshot
	shops        map[uuid.UUID]*shared.ShopSnapshot
	customers    map[uuid.UUID]*shared.CustomerSnapshot
	appointments map[uuid.UUID]*shared.AppointmentSnapshot
	finances     []*ledger.FinancialRecord
	jobs         []fakeJob
}

type fakeJob struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        make(map[uuid.UUID]*shared.UserSnapshot),
		credentials:  make(map[string]*shared.CredentialsSnapshot),
		shops:        make(map[uuid.UUID]*shared.ShopSnapshot),
		customers:    make(map[uuid.UUID]*shared.CustomerSnapshot),
		appointments: make(map[uuid.UUID]*shared.AppointmentSnapshot),
	}
}

func (s *fakeStore) addUser(role user.Role, shopID *uuid.UUID, commission float64) uuid.UUID {
	id := uuid.New()
	s.users[id] = &shared.UserSnapshot{
		ID:         id,
		Name:       "barber-" + id.String()[:8],
		Email:      id.String()[:8] + "@example.com",
		Role:       role.String(),
		ShopID:     shopID,
		Commission: commission,
		IsActive:   true,
	}
	return id
}

func (s *fakeStore) addCustomer(shopBarberID uuid.UUID, name string) uuid.UUID {
	id := uuid.New()
	s.customers[id] = &shared.CustomerSnapshot{
		ID:                  id,
		Name:                name,
		ResponsibleBarberID: shopBarberID,
	}
	return id
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeUoW struct {
	store *fakeStore
}

func newFakeUoW(store *fakeStore) shared.UnitOfWork {
	return &fakeUoW{store: store}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) Users() shared.UserRepository               { return &fakeUserRepo{store: t.store} }
func (t *fakeTx) Shops() shared.ShopRepository               { return &fakeShopRepo{store: t.store} }
func (t *fakeTx) Customers() shared.CustomerRepository       { return &fakeCustomerRepo{store: t.store} }
func (t *fakeTx) Appointments() shared.AppointmentRepository { return &fakeAppointmentRepo{store: t.store} }
func (t *fakeTx) Finances() shared.FinanceRepository         { return &fakeFinanceRepo{store: t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository {
	return &fakeNotificationRepo{store: t.store}
}
func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                { return nopDBTX{} }

type nopDBTX struct{}

func (nopDBTX) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (nopDBTX) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, nil }
func (nopDBTX) QueryRow(context.Context, string, ...any) pgx.Row        { return nil }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.store.users[id]
	if !ok {
		return nil, notFoundErr("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeReads) CredentialsByEmail(_ context.Context, email string) (*shared.CredentialsSnapshot, error) {
	c, ok := r.store.credentials[email]
	if !ok {
		return nil, notFoundErr("credentials not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeReads) ShopByInviteCode(_ context.Context, code string) (*shared.ShopSnapshot, error) {
	for _, s := range r.store.shops {
		if s.InviteCode == code {
			cp := *s
			return &cp, nil
		}
	}
	return nil, notFoundErr("shop not found")
}

func (r *fakeReads) CustomerByName(_ context.Context, shopID uuid.UUID, name string) (*shared.CustomerSnapshot, error) {
	for _, c := range r.store.customers {
		barber, ok := r.store.users[c.ResponsibleBarberID]
		if !ok || barber.ShopID == nil || *barber.ShopID != shopID {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, notFoundErr("customer not found")
}

func (r *fakeReads) CustomerByID(_ context.Context, shopID, id uuid.UUID) (*shared.CustomerSnapshot, error) {
	c, ok := r.store.customers[id]
	if !ok {
		return nil, notFoundErr("customer not found")
	}
	barber, ok := r.store.users[c.ResponsibleBarberID]
	if !ok || barber.ShopID == nil || *barber.ShopID != shopID {
		return nil, notFoundErr("customer not found")
	}
	cp := *c
	return &cp, nil
}

func (r *fakeReads) AppointmentByID(_ context.Context, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	a, ok := r.store.appointments[id]
	if !ok {
		return nil, notFoundErr("appointment not found")
	}
	cp := *a
	return &cp, nil
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if _, taken := r.store.credentials[u.Email().String()]; taken {
		return uuid.Nil, infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	var shopID *uuid.UUID
	if u.ShopID() != nil {
		cp := *u.ShopID()
		shopID = &cp
	}
	r.store.users[u.ID()] = &shared.UserSnapshot{
		ID:         u.ID(),
		Name:       u.Name(),
		Email:      u.Email().String(),
		Role:       u.Role().String(),
		ShopID:     shopID,
		Commission: u.Commission().Float64(),
		IsActive:   u.IsActive(),
	}
	r.store.credentials[u.Email().String()] = &shared.CredentialsSnapshot{
		ID:           u.ID(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
	}
	return u.ID(), nil
}

func (r *fakeUserRepo) BindShop(_ context.Context, _ db.DBTX, userID, shopID uuid.UUID, role user.Role) error {
	u, ok := r.store.users[userID]
	if !ok || u.ShopID != nil {
		return notFoundErr("user not found or already affiliated")
	}
	u.ShopID = &shopID
	u.Role = role.String()
	return nil
}

func (r *fakeUserRepo) SetCommission(_ context.Context, _ db.DBTX, userID uuid.UUID, rate user.Rate) error {
	u, ok := r.store.users[userID]
	if !ok {
		return notFoundErr("user not found")
	}
	u.Commission = rate.Float64()
	return nil
}

type fakeShopRepo struct {
	store *fakeStore
}

func (r *fakeShopRepo) Create(_ context.Context, _ db.DBTX, s *shop.Shop) (uuid.UUID, error) {
	for _, existing := range r.store.shops {
		if existing.InviteCode == s.InviteCode().String() {
			return uuid.Nil, infra.WrapRepoErr("duplicate invite code", nil, infra.KindDuplicateKey)
		}
	}
	r.store.shops[s.ID()] = &shared.ShopSnapshot{
		ID:         s.ID(),
		Name:       s.Name(),
		OwnerID:    s.OwnerID(),
		InviteCode: s.InviteCode().String(),
	}
	return s.ID(), nil
}

type fakeCustomerRepo struct {
	store *fakeStore
}

func (r *fakeCustomerRepo) Create(_ context.Context, _ db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	r.store.customers[c.ID()] = &shared.CustomerSnapshot{
		ID:                  c.ID(),
		Name:                c.Name(),
		Phone:               c.Phone(),
		ResponsibleBarberID: c.ResponsibleBarberID(),
		TotalSpentCents:     c.TotalSpentCents(),
		LastVisit:           c.LastVisit(),
	}
	return c.ID(), nil
}

func (r *fakeCustomerRepo) RecordVisit(_ context.Context, _ db.DBTX, customerID uuid.UUID, amountCents int64, at time.Time) error {
	c, ok := r.store.customers[customerID]
	if !ok {
		return notFoundErr("customer not found")
	}
	c.TotalSpentCents += amountCents
	c.LastVisit = at
	return nil
}

type fakeAppointmentRepo struct {
	store *fakeStore
}

func (r *fakeAppointmentRepo) Create(_ context.Context, _ db.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	for _, existing := range r.store.appointments {
		if existing.CustomerID == a.CustomerID() &&
			existing.ScheduledAt.Equal(a.ScheduledAt()) &&
			existing.Status != appointment.StatusCancelled.String() {
			return uuid.Nil, infra.WrapRepoErr("duplicate booking", nil, infra.KindDuplicateKey)
		}
	}
	r.store.appointments[a.ID()] = &shared.AppointmentSnapshot{
		ID:          a.ID(),
		CustomerID:  a.CustomerID(),
		BarberID:    a.BarberID(),
		ServiceName: a.ServiceName(),
		PriceCents:  a.Price().Cents(),
		ScheduledAt: a.ScheduledAt(),
		Status:      a.Status().String(),
	}
	return a.ID(), nil
}

func (r *fakeAppointmentRepo) TransitionStatus(_ context.Context, _ db.DBTX, id uuid.UUID, to appointment.Status) (bool, error) {
	a, ok := r.store.appointments[id]
	if !ok {
		return false, nil
	}
	if appointment.Status(a.Status).IsTerminal() {
		return false, nil
	}
	a.Status = to.String()
	return true, nil
}

type fakeFinanceRepo struct {
	store *fakeStore
}

func (r *fakeFinanceRepo) Create(_ context.Context, _ db.DBTX, rec *ledger.FinancialRecord) (uuid.UUID, error) {
	r.store.finances = append(r.store.finances, rec)
	return rec.ID(), nil
}

type fakeNotificationRepo struct {
	store *fakeStore
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.store.jobs = append(r.store.jobs, fakeJob{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}
