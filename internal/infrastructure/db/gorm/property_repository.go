package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// PropertyRepository is the GORM-backed property store. Scoped reads report
// out-of-scope rows as domain.ErrNotFound.
type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return mapError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uint, scope ports.AccessScope) (*domain.Property, error) {
	q, err := scopeProperties(r.db.WithContext(ctx), scope)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var p domain.Property
	if err := q.Where("properties.id = ?", id).First(&p).Error; err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

func (r *PropertyRepository) List(ctx context.Context, scope ports.AccessScope) ([]domain.Property, error) {
	q, err := scopeProperties(r.db.WithContext(ctx), scope)
	if err != nil {
		return nil, nil
	}
	var out []domain.Property
	if err := q.Order("properties.id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PropertyRepository) Update(ctx context.Context, p *domain.Property) error {
	res := r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":        p.Name,
		"address":     p.Address,
		"description": p.Description,
		"type":        p.Type,
	})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Property{}, id).Error
}

// UnitRepository is the GORM-backed unit store.
type UnitRepository struct {
	db *gorm.DB
}

func NewUnitRepository(db *gorm.DB) *UnitRepository {
	return &UnitRepository{db: db}
}

func (r *UnitRepository) Create(ctx context.Context, u *domain.Unit) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id uint, scope ports.AccessScope) (*domain.Unit, error) {
	q, err := scopeUnits(r.db.WithContext(ctx), scope)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	var u domain.Unit
	if err := q.Where("units.id = ?", id).First(&u).Error; err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UnitRepository) List(ctx context.Context, scope ports.AccessScope) ([]domain.Unit, error) {
	q, err := scopeUnits(r.db.WithContext(ctx), scope)
	if err != nil {
		return nil, nil
	}
	var out []domain.Unit
	if err := q.Order("units.id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UnitRepository) ListByProperty(ctx context.Context, propertyID uint) ([]domain.Unit, error) {
	var out []domain.Unit
	if err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UnitRepository) Update(ctx context.Context, u *domain.Unit) error {
	res := r.db.WithContext(ctx).Model(&domain.Unit{}).Where("id = ?", u.ID).Updates(map[string]any{
		"unit_number": u.UnitNumber,
		"size":        u.Size,
		"rent":        u.Rent,
		"status":      u.Status,
	})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UnitRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Unit{}, id).Error
}
