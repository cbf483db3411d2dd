package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory store shared by the stub repositories. Scope interpretation
// mirrors the joins the real GORM repositories run.
// ---------------------------------------------------------------------------

type memDB struct {
	seq               uint
	accounts          map[uint]*domain.Account
	properties        map[uint]*domain.Property
	units             map[uint]*domain.Unit
	tenantProfiles    map[uint]*domain.TenantProfile
	managerProfiles   map[uint]*domain.ManagerProfile
	managed           map[uint]map[uint]bool // manager profile id -> property ids
	caretakerProfiles map[uint]*domain.CaretakerProfile
	assignments       map[[2]uint]*domain.TenancyAssignment // (tenant profile id, unit id)
	payments          map[uint]*domain.Payment
	maintenance       map[uint]*domain.MaintenanceRequest
}

func newMemDB() *memDB {
	return &memDB{
		accounts:          make(map[uint]*domain.Account),
		properties:        make(map[uint]*domain.Property),
		units:             make(map[uint]*domain.Unit),
		tenantProfiles:    make(map[uint]*domain.TenantProfile),
		managerProfiles:   make(map[uint]*domain.ManagerProfile),
		managed:           make(map[uint]map[uint]bool),
		caretakerProfiles: make(map[uint]*domain.CaretakerProfile),
		assignments:       make(map[[2]uint]*domain.TenancyAssignment),
		payments:          make(map[uint]*domain.Payment),
		maintenance:       make(map[uint]*domain.MaintenanceRequest),
	}
}

func (db *memDB) nextID() uint {
	db.seq++
	return db.seq
}

func (db *memDB) propertyVisible(p *domain.Property, scope ports.AccessScope) bool {
	switch {
	case scope.All:
		return true
	case scope.OwnerAccountID != 0:
		return p.OwnerID == scope.OwnerAccountID
	case scope.ManagerAccountID != 0:
		return db.managesProperty(scope.ManagerAccountID, p.ID)
	default:
		return false
	}
}

func (db *memDB) managesProperty(accountID, propertyID uint) bool {
	for _, mp := range db.managerProfiles {
		if mp.AccountID == accountID {
			return db.managed[mp.ID][propertyID]
		}
	}
	return false
}

func (db *memDB) unitVisible(u *domain.Unit, scope ports.AccessScope) bool {
	switch {
	case scope.All:
		return true
	case scope.OwnerAccountID != 0 || scope.ManagerAccountID != 0:
		p, ok := db.properties[u.PropertyID]
		return ok && db.propertyVisible(p, scope)
	case scope.TenantAccountID != 0:
		for key := range db.assignments {
			if key[1] != u.ID {
				continue
			}
			tp := db.tenantProfiles[key[0]]
			if tp != nil && tp.AccountID == scope.TenantAccountID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (db *memDB) tenantProfileVisible(tp *domain.TenantProfile, scope ports.AccessScope) bool {
	switch {
	case scope.All:
		return true
	case scope.TenantAccountID != 0:
		return tp.AccountID == scope.TenantAccountID
	case scope.OwnerAccountID != 0 || scope.ManagerAccountID != 0:
		for key := range db.assignments {
			if key[0] != tp.ID {
				continue
			}
			u := db.units[key[1]]
			if u == nil {
				continue
			}
			p := db.properties[u.PropertyID]
			if p != nil && db.propertyVisible(p, scope) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (db *memDB) tenantOccupiesProperty(tenantProfileID, propertyID uint) bool {
	for key := range db.assignments {
		if key[0] != tenantProfileID {
			continue
		}
		if u := db.units[key[1]]; u != nil && u.PropertyID == propertyID {
			return true
		}
	}
	return false
}

func (db *memDB) maintenanceVisible(m *domain.MaintenanceRequest, scope ports.AccessScope) bool {
	if scope.CaretakerAccountID != 0 {
		for _, cp := range db.caretakerProfiles {
			if cp.AccountID == scope.CaretakerAccountID && cp.AssignedPropertyID != nil {
				return db.tenantOccupiesProperty(m.TenantProfileID, *cp.AssignedPropertyID)
			}
		}
		return false
	}
	tp := db.tenantProfiles[m.TenantProfileID]
	return tp != nil && db.tenantProfileVisible(tp, scope)
}

// ---------------------------------------------------------------------------
// Stub repositories
// ---------------------------------------------------------------------------

type stubAccountRepo struct{ db *memDB }

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) error {
	for _, other := range r.db.accounts {
		if other.Email == a.Email || other.PhoneNumber == a.PhoneNumber {
			return domain.ErrAccountExists
		}
	}
	a.ID = r.db.nextID()
	clone := *a
	r.db.accounts[a.ID] = &clone
	return nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id uint) (*domain.Account, error) {
	a, ok := r.db.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	for _, a := range r.db.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.db.accounts))
	for _, a := range r.db.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubAccountRepo) Update(_ context.Context, a *domain.Account) error {
	if _, ok := r.db.accounts[a.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *a
	r.db.accounts[a.ID] = &clone
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id uint) error {
	delete(r.db.accounts, id)
	return nil
}

type stubPropertyRepo struct{ db *memDB }

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) error {
	p.ID = r.db.nextID()
	clone := *p
	r.db.properties[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id uint, scope ports.AccessScope) (*domain.Property, error) {
	p, ok := r.db.properties[id]
	if !ok || !r.db.propertyVisible(p, scope) {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPropertyRepo) List(_ context.Context, scope ports.AccessScope) ([]domain.Property, error) {
	var out []domain.Property
	for _, p := range r.db.properties {
		if r.db.propertyVisible(p, scope) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := r.db.properties[p.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *p
	r.db.properties[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id uint) error {
	delete(r.db.properties, id)
	return nil
}

type stubUnitRepo struct{ db *memDB }

func (r *stubUnitRepo) Create(_ context.Context, u *domain.Unit) error {
	for _, other := range r.db.units {
		if other.PropertyID == u.PropertyID && other.UnitNumber == u.UnitNumber {
			return domain.ErrConflict
		}
	}
	u.ID = r.db.nextID()
	clone := *u
	r.db.units[u.ID] = &clone
	return nil
}

func (r *stubUnitRepo) FindByID(_ context.Context, id uint, scope ports.AccessScope) (*domain.Unit, error) {
	u, ok := r.db.units[id]
	if !ok || !r.db.unitVisible(u, scope) {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUnitRepo) List(_ context.Context, scope ports.AccessScope) ([]domain.Unit, error) {
	var out []domain.Unit
	for _, u := range r.db.units {
		if r.db.unitVisible(u, scope) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUnitRepo) ListByProperty(_ context.Context, propertyID uint) ([]domain.Unit, error) {
	var out []domain.Unit
	for _, u := range r.db.units {
		if u.PropertyID == propertyID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUnitRepo) Update(_ context.Context, u *domain.Unit) error {
	if _, ok := r.db.units[u.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *u
	r.db.units[u.ID] = &clone
	return nil
}

func (r *stubUnitRepo) Delete(_ context.Context, id uint) error {
	delete(r.db.units, id)
	return nil
}

type stubTenantProfileRepo struct {
	db                  *memDB
	createAssignmentErr error // if set, CreateAssignment returns this error
}

func (r *stubTenantProfileRepo) GetOrCreate(_ context.Context, accountID uint) (*domain.TenantProfile, error) {
	for _, tp := range r.db.tenantProfiles {
		if tp.AccountID == accountID {
			clone := *tp
			return &clone, nil
		}
	}
	tp := &domain.TenantProfile{ID: r.db.nextID(), AccountID: accountID}
	r.db.tenantProfiles[tp.ID] = tp
	clone := *tp
	return &clone, nil
}

func (r *stubTenantProfileRepo) FindByID(_ context.Context, id uint, scope ports.AccessScope) (*domain.TenantProfile, error) {
	tp, ok := r.db.tenantProfiles[id]
	if !ok || !r.db.tenantProfileVisible(tp, scope) {
		return nil, domain.ErrNotFound
	}
	clone := *tp
	return &clone, nil
}

func (r *stubTenantProfileRepo) FindByAccountID(_ context.Context, accountID uint) (*domain.TenantProfile, error) {
	for _, tp := range r.db.tenantProfiles {
		if tp.AccountID == accountID {
			clone := *tp
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubTenantProfileRepo) List(_ context.Context, scope ports.AccessScope) ([]domain.TenantProfile, error) {
	var out []domain.TenantProfile
	for _, tp := range r.db.tenantProfiles {
		if r.db.tenantProfileVisible(tp, scope) {
			out = append(out, *tp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTenantProfileRepo) ListByProperty(_ context.Context, propertyID uint) ([]domain.TenantProfile, error) {
	var out []domain.TenantProfile
	for _, tp := range r.db.tenantProfiles {
		if r.db.tenantOccupiesProperty(tp.ID, propertyID) {
			out = append(out, *tp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubTenantProfileRepo) CreateAssignment(_ context.Context, a *domain.TenancyAssignment) error {
	if r.createAssignmentErr != nil {
		return r.createAssignmentErr
	}
	key := [2]uint{a.TenantProfileID, a.UnitID}
	if _, exists := r.db.assignments[key]; exists {
		return fmt.Errorf("%w: tenant %d already assigned to unit %d", domain.ErrConflict, a.TenantProfileID, a.UnitID)
	}
	a.ID = r.db.nextID()
	clone := *a
	r.db.assignments[key] = &clone
	return nil
}

func (r *stubTenantProfileRepo) DeleteAssignment(_ context.Context, tenantProfileID, unitID uint) error {
	key := [2]uint{tenantProfileID, unitID}
	if _, exists := r.db.assignments[key]; !exists {
		return domain.ErrNotFound
	}
	delete(r.db.assignments, key)
	return nil
}

type stubManagerProfileRepo struct{ db *memDB }

func (r *stubManagerProfileRepo) GetOrCreate(_ context.Context, accountID uint) (*domain.ManagerProfile, error) {
	for _, mp := range r.db.managerProfiles {
		if mp.AccountID == accountID {
			clone := *mp
			return &clone, nil
		}
	}
	mp := &domain.ManagerProfile{ID: r.db.nextID(), AccountID: accountID}
	r.db.managerProfiles[mp.ID] = mp
	r.db.managed[mp.ID] = make(map[uint]bool)
	clone := *mp
	return &clone, nil
}

func (r *stubManagerProfileRepo) FindByAccountID(_ context.Context, accountID uint) (*domain.ManagerProfile, error) {
	for _, mp := range r.db.managerProfiles {
		if mp.AccountID == accountID {
			clone := *mp
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubManagerProfileRepo) AddManagedProperty(_ context.Context, profileID, propertyID uint) error {
	if r.db.managed[profileID] == nil {
		r.db.managed[profileID] = make(map[uint]bool)
	}
	r.db.managed[profileID][propertyID] = true
	return nil
}

func (r *stubManagerProfileRepo) RemoveManagedProperty(_ context.Context, profileID, propertyID uint) error {
	delete(r.db.managed[profileID], propertyID)
	return nil
}

func (r *stubManagerProfileRepo) Manages(_ context.Context, accountID, propertyID uint) (bool, error) {
	return r.db.managesProperty(accountID, propertyID), nil
}

type stubCaretakerProfileRepo struct{ db *memDB }

func (r *stubCaretakerProfileRepo) GetOrCreate(_ context.Context, accountID uint) (*domain.CaretakerProfile, error) {
	for _, cp := range r.db.caretakerProfiles {
		if cp.AccountID == accountID {
			clone := *cp
			return &clone, nil
		}
	}
	cp := &domain.CaretakerProfile{ID: r.db.nextID(), AccountID: accountID}
	r.db.caretakerProfiles[cp.ID] = cp
	clone := *cp
	return &clone, nil
}

func (r *stubCaretakerProfileRepo) FindByID(_ context.Context, id uint, scope ports.AccessScope) (*domain.CaretakerProfile, error) {
	cp, ok := r.db.caretakerProfiles[id]
	if !ok || !scope.All {
		return nil, domain.ErrNotFound
	}
	clone := *cp
	return &clone, nil
}

func (r *stubCaretakerProfileRepo) FindByAccountID(_ context.Context, accountID uint) (*domain.CaretakerProfile, error) {
	for _, cp := range r.db.caretakerProfiles {
		if cp.AccountID == accountID {
			clone := *cp
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubCaretakerProfileRepo) List(_ context.Context, scope ports.AccessScope) ([]domain.CaretakerProfile, error) {
	if !scope.All {
		return nil, nil
	}
	var out []domain.CaretakerProfile
	for _, cp := range r.db.caretakerProfiles {
		out = append(out, *cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCaretakerProfileRepo) SetAssignedProperty(_ context.Context, profileID uint, propertyID *uint) error {
	cp, ok := r.db.caretakerProfiles[profileID]
	if !ok {
		return domain.ErrNotFound
	}
	cp.AssignedPropertyID = propertyID
	return nil
}

type stubPaymentRepo struct{ db *memDB }

func (r *stubPaymentRepo) Create(_ context.Context, p *domain.Payment) error {
	p.ID = r.db.nextID()
	clone := *p
	r.db.payments[p.ID] = &clone
	return nil
}

func (r *stubPaymentRepo) FindByID(_ context.Context, id uint, scope ports.AccessScope) (*domain.Payment, error) {
	p, ok := r.db.payments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	tp := r.db.tenantProfiles[p.TenantProfileID]
	if tp == nil || !r.db.tenantProfileVisible(tp, scope) {
		return nil, domain.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPaymentRepo) List(_ context.Context, scope ports.AccessScope) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.db.payments {
		tp := r.db.tenantProfiles[p.TenantProfileID]
		if tp != nil && r.db.tenantProfileVisible(tp, scope) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPaymentRepo) ListByProperty(_ context.Context, propertyID uint) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.db.payments {
		if r.db.tenantOccupiesProperty(p.TenantProfileID, propertyID) {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPaymentRepo) ListByTenant(_ context.Context, tenantProfileID uint) ([]domain.Payment, error) {
	var out []domain.Payment
	for _, p := range r.db.payments {
		if p.TenantProfileID == tenantProfileID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubPaymentRepo) Update(_ context.Context, p *domain.Payment) error {
	if _, ok := r.db.payments[p.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *p
	r.db.payments[p.ID] = &clone
	return nil
}

func (r *stubPaymentRepo) Delete(_ context.Context, id uint) error {
	delete(r.db.payments, id)
	return nil
}

type stubMaintenanceRepo struct{ db *memDB }

func (r *stubMaintenanceRepo) Create(_ context.Context, m *domain.MaintenanceRequest) error {
	m.ID = r.db.nextID()
	clone := *m
	r.db.maintenance[m.ID] = &clone
	return nil
}

func (r *stubMaintenanceRepo) FindByID(_ context.Context, id uint, scope ports.AccessScope) (*domain.MaintenanceRequest, error) {
	m, ok := r.db.maintenance[id]
	if !ok || !r.db.maintenanceVisible(m, scope) {
		return nil, domain.ErrNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMaintenanceRepo) List(_ context.Context, scope ports.AccessScope) ([]domain.MaintenanceRequest, error) {
	var out []domain.MaintenanceRequest
	for _, m := range r.db.maintenance {
		if r.db.maintenanceVisible(m, scope) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMaintenanceRepo) ListByProperty(_ context.Context, propertyID uint) ([]domain.MaintenanceRequest, error) {
	var out []domain.MaintenanceRequest
	for _, m := range r.db.maintenance {
		if r.db.tenantOccupiesProperty(m.TenantProfileID, propertyID) {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMaintenanceRepo) Update(_ context.Context, m *domain.MaintenanceRequest) error {
	if _, ok := r.db.maintenance[m.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *m
	r.db.maintenance[m.ID] = &clone
	return nil
}

func (r *stubMaintenanceRepo) Delete(_ context.Context, id uint) error {
	delete(r.db.maintenance, id)
	return nil
}

// ---------------------------------------------------------------------------
// Fixture
// ---------------------------------------------------------------------------

type fixture struct {
	db          *memDB
	accounts    *stubAccountRepo
	properties  *stubPropertyRepo
	units       *stubUnitRepo
	tenants     *stubTenantProfileRepo
	managers    *stubManagerProfileRepo
	caretakers  *stubCaretakerProfileRepo
	payments    *stubPaymentRepo
	maintenance *stubMaintenanceRepo
}

func newFixture() *fixture {
	db := newMemDB()
	return &fixture{
		db:          db,
		accounts:    &stubAccountRepo{db: db},
		properties:  &stubPropertyRepo{db: db},
		units:       &stubUnitRepo{db: db},
		tenants:     &stubTenantProfileRepo{db: db},
		managers:    &stubManagerProfileRepo{db: db},
		caretakers:  &stubCaretakerProfileRepo{db: db},
		payments:    &stubPaymentRepo{db: db},
		maintenance: &stubMaintenanceRepo{db: db},
	}
}

func (f *fixture) assignmentService() *AssignmentService {
	return NewAssignmentService(f.accounts, f.properties, f.units, f.tenants, f.managers, f.caretakers, discardLogger)
}

func (f *fixture) seedAccount(role domain.Role) *domain.Account {
	id := f.db.nextID()
	a := &domain.Account{
		ID:          id,
		Email:       fmt.Sprintf("account%d@example.com", id),
		PhoneNumber: fmt.Sprintf("+1555%07d", id),
		Role:        role,
	}
	f.db.accounts[id] = a
	return a
}

func (f *fixture) seedProperty(ownerID uint, name string) *domain.Property {
	id := f.db.nextID()
	p := &domain.Property{ID: id, OwnerID: ownerID, Name: name, Address: name + " street", Type: domain.PropertyResidential}
	f.db.properties[id] = p
	return p
}

func (f *fixture) seedUnit(propertyID uint, number, rent string) *domain.Unit {
	id := f.db.nextID()
	u := &domain.Unit{
		ID:         id,
		PropertyID: propertyID,
		UnitNumber: number,
		Rent:       decimal.RequireFromString(rent),
		Status:     domain.UnitAvailable,
	}
	f.db.units[id] = u
	return u
}

func (f *fixture) seedPayment(tenantProfileID uint, amount string, status domain.PaymentStatus) *domain.Payment {
	id := f.db.nextID()
	p := &domain.Payment{
		ID:              id,
		TenantProfileID: tenantProfileID,
		Amount:          decimal.RequireFromString(amount),
		Status:          status,
	}
	f.db.payments[id] = p
	return p
}
