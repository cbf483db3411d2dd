package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// PaymentRepository is the GORM-backed payment store.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return mapError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint, scope ports.AccessScope) (*domain.Payment, error) {
	q, err := scopeByTenantProfile(r.db.WithContext(ctx), "payments", scope)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var p domain.Payment
	if err := q.Where("payments.id = ?", id).First(&p).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *PaymentRepository) List(ctx context.Context, scope ports.AccessScope) ([]domain.Payment, error) {
	q, err := scopeByTenantProfile(r.db.WithContext(ctx), "payments", scope)
	if err != nil {
		return nil, nil
	}
	var out []domain.Payment
	if err := q.Order("payments.id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepository) ListByProperty(ctx context.Context, propertyID uint) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Distinct("payments.*").
		Joins("JOIN tenancy_assignments ta ON ta.tenant_profile_id = payments.tenant_profile_id").
		Joins("JOIN units u ON u.id = ta.unit_id").
		Where("u.property_id = ?", propertyID).
		Order("payments.id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantProfileID uint) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.WithContext(ctx).
		Where("tenant_profile_id = ?", tenantProfileID).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	res := r.db.WithContext(ctx).Model(&domain.Payment{}).Where("id = ?", p.ID).Updates(map[string]any{
		"amount":       p.Amount,
		"due_date":     p.DueDate,
		"payment_date": p.PaymentDate,
		"status":       p.Status,
	})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Payment{}, id).Error
}

// MaintenanceRepository is the GORM-backed maintenance request store.
type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

// scoped applies the maintenance visibility rules. Caretakers see requests
// filed by tenants occupying their assigned property; everyone else follows
// the tenant-profile visibility of their scope.
func (r *MaintenanceRepository) scoped(ctx context.Context, scope ports.AccessScope) (*gorm.DB, error) {
	q := r.db.WithContext(ctx)
	if scope.CaretakerAccountID != 0 {
		return q.Distinct("maintenance_requests.*").
			Joins("JOIN tenancy_assignments ta ON ta.tenant_profile_id = maintenance_requests.tenant_profile_id").
			Joins("JOIN units u ON u.id = ta.unit_id").
			Joins("JOIN caretaker_profiles cp ON cp.assigned_property_id = u.property_id").
			Where("cp.account_id = ?", scope.CaretakerAccountID), nil
	}
	return scopeByTenantProfile(q, "maintenance_requests", scope)
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.MaintenanceRequest) error {
	return mapError(r.db.WithContext(ctx).Create(m).Error)
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id uint, scope ports.AccessScope) (*domain.MaintenanceRequest, error) {
	q, err := r.scoped(ctx, scope)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var m domain.MaintenanceRequest
	if err := q.Where("maintenance_requests.id = ?", id).First(&m).Error; err != nil {
		return nil, mapError(err)
	}
	return &m, nil
}

func (r *MaintenanceRepository) List(ctx context.Context, scope ports.AccessScope) ([]domain.MaintenanceRequest, error) {
	q, err := r.scoped(ctx, scope)
	if err != nil {
		return nil, nil
	}
	var out []domain.MaintenanceRequest
	if err := q.Order("maintenance_requests.id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MaintenanceRepository) ListByProperty(ctx context.Context, propertyID uint) ([]domain.MaintenanceRequest, error) {
	var out []domain.MaintenanceRequest
	err := r.db.WithContext(ctx).
		Distinct("maintenance_requests.*").
		Joins("JOIN tenancy_assignments ta ON ta.tenant_profile_id = maintenance_requests.tenant_profile_id").
		Joins("JOIN units u ON u.id = ta.unit_id").
		Where("u.property_id = ?", propertyID).
		Order("maintenance_requests.id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *domain.MaintenanceRequest) error {
	res := r.db.WithContext(ctx).Model(&domain.MaintenanceRequest{}).Where("id = ?", m.ID).Updates(map[string]any{
		"description":     m.Description,
		"status":          m.Status,
		"completion_date": m.CompletionDate,
	})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MaintenanceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.MaintenanceRequest{}, id).Error
}
