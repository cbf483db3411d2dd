package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// TenantProfileRepository is the GORM-backed store for tenant profiles and
// tenancy assignments.
type TenantProfileRepository struct {
	db *gorm.DB
}

func NewTenantProfileRepository(db *gorm.DB) *TenantProfileRepository {
	return &TenantProfileRepository{db: db}
}

// GetOrCreate fetches the profile for the account, creating it on first
// use. Concurrent first calls race on the account_id unique index; the
// loser retries the read so both callers converge on the same row.
func (r *TenantProfileRepository) GetOrCreate(ctx context.Context, accountID uint) (*domain.TenantProfile, error) {
	var tp domain.TenantProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&tp).Error
	if err == nil {
		return &tp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tp = domain.TenantProfile{AccountID: accountID}
	if err := r.db.WithContext(ctx).Create(&tp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing domain.TenantProfile
			if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&existing).Error; err != nil {
				return nil, mapError(err)
			}
			return &existing, nil
		}
		return nil, err
	}
	return &tp, nil
}

func (r *TenantProfileRepository) FindByID(ctx context.Context, id uint, scope ports.AccessScope) (*domain.TenantProfile, error) {
	q, err := scopeTenantProfiles(r.db.WithContext(ctx), scope)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var tp domain.TenantProfile
	if err := q.Where("tenant_profiles.id = ?", id).First(&tp).Error; err != nil {
		return nil, mapError(err)
	}
	return &tp, nil
}

func (r *TenantProfileRepository) FindByAccountID(ctx context.Context, accountID uint) (*domain.TenantProfile, error) {
	var tp domain.TenantProfile
	err := r.db.WithContext(ctx).Preload("Units").Where("account_id = ?", accountID).First(&tp).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &tp, nil
}

func (r *TenantProfileRepository) List(ctx context.Context, scope ports.AccessScope) ([]domain.TenantProfile, error) {
	q, err := scopeTenantProfiles(r.db.WithContext(ctx), scope)
	if err != nil {
		return nil, nil
	}
	var out []domain.TenantProfile
	if err := q.Order("tenant_profiles.id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TenantProfileRepository) ListByProperty(ctx context.Context, propertyID uint) ([]domain.TenantProfile, error) {
	var out []domain.TenantProfile
	err := r.db.WithContext(ctx).
		Distinct("tenant_profiles.*").
		Joins("JOIN tenancy_assignments ta ON ta.tenant_profile_id = tenant_profiles.id").
		Joins("JOIN units u ON u.id = ta.unit_id").
		Where("u.property_id = ?", propertyID).
		Order("tenant_profiles.id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TenantProfileRepository) CreateAssignment(ctx context.Context, a *domain.TenancyAssignment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *TenantProfileRepository) DeleteAssignment(ctx context.Context, tenantProfileID, unitID uint) error {
	res := r.db.WithContext(ctx).
		Where("tenant_profile_id = ? AND unit_id = ?", tenantProfileID, unitID).
		Delete(&domain.TenancyAssignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ManagerProfileRepository is the GORM-backed store for manager profiles and
// the manager_properties join table.
type ManagerProfileRepository struct {
	db *gorm.DB
}

func NewManagerProfileRepository(db *gorm.DB) *ManagerProfileRepository {
	return &ManagerProfileRepository{db: db}
}

func (r *ManagerProfileRepository) GetOrCreate(ctx context.Context, accountID uint) (*domain.ManagerProfile, error) {
	var mp domain.ManagerProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&mp).Error
	if err == nil {
		return &mp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	mp = domain.ManagerProfile{AccountID: accountID}
	if err := r.db.WithContext(ctx).Create(&mp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing domain.ManagerProfile
			if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&existing).Error; err != nil {
				return nil, mapError(err)
			}
			return &existing, nil
		}
		return nil, err
	}
	return &mp, nil
}

func (r *ManagerProfileRepository) FindByAccountID(ctx context.Context, accountID uint) (*domain.ManagerProfile, error) {
	var mp domain.ManagerProfile
	err := r.db.WithContext(ctx).Preload("ManagedProperties").Where("account_id = ?", accountID).First(&mp).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &mp, nil
}

func (r *ManagerProfileRepository) AddManagedProperty(ctx context.Context, profileID, propertyID uint) error {
	// ON CONFLICT DO NOTHING gives the idempotent set semantics.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Table("manager_properties").
		Create(map[string]any{
			"manager_profile_id": profileID,
			"property_id":        propertyID,
		}).Error
}

func (r *ManagerProfileRepository) RemoveManagedProperty(ctx context.Context, profileID, propertyID uint) error {
	return r.db.WithContext(ctx).
		Exec("DELETE FROM manager_properties WHERE manager_profile_id = ? AND property_id = ?", profileID, propertyID).
		Error
}

func (r *ManagerProfileRepository) Manages(ctx context.Context, accountID, propertyID uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("manager_properties").
		Joins("JOIN manager_profiles m ON m.id = manager_properties.manager_profile_id").
		Where("m.account_id = ? AND manager_properties.property_id = ?", accountID, propertyID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CaretakerProfileRepository is the GORM-backed store for caretaker profiles.
type CaretakerProfileRepository struct {
	db *gorm.DB
}

func NewCaretakerProfileRepository(db *gorm.DB) *CaretakerProfileRepository {
	return &CaretakerProfileRepository{db: db}
}

func (r *CaretakerProfileRepository) GetOrCreate(ctx context.Context, accountID uint) (*domain.CaretakerProfile, error) {
	var cp domain.CaretakerProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&cp).Error
	if err == nil {
		return &cp, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cp = domain.CaretakerProfile{AccountID: accountID}
	if err := r.db.WithContext(ctx).Create(&cp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing domain.CaretakerProfile
			if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&existing).Error; err != nil {
				return nil, mapError(err)
			}
			return &existing, nil
		}
		return nil, err
	}
	return &cp, nil
}

// FindByID ignores narrowing rules other than All: caretaker profiles are
// either listable by everyone authenticated or not reachable at all.
func (r *CaretakerProfileRepository) FindByID(ctx context.Context, id uint, scope ports.AccessScope) (*domain.CaretakerProfile, error) {
	if !scope.All {
		return nil, domain.ErrNotFound
	}
	var cp domain.CaretakerProfile
	if err := r.db.WithContext(ctx).First(&cp, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &cp, nil
}

func (r *CaretakerProfileRepository) FindByAccountID(ctx context.Context, accountID uint) (*domain.CaretakerProfile, error) {
	var cp domain.CaretakerProfile
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&cp).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &cp, nil
}

func (r *CaretakerProfileRepository) List(ctx context.Context, scope ports.AccessScope) ([]domain.CaretakerProfile, error) {
	if !scope.All {
		return nil, nil
	}
	var out []domain.CaretakerProfile
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CaretakerProfileRepository) SetAssignedProperty(ctx context.Context, profileID uint, propertyID *uint) error {
	res := r.db.WithContext(ctx).
		Model(&domain.CaretakerProfile{}).
		Where("id = ?", profileID).
		Update("assigned_property_id", propertyID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
