package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rentwise/property-system/internal/core/domain"
)

// AccountRepository is the GORM-backed account store.
type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrAccountExists
		}
		return err
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (*domain.Account, error) {
	var a domain.Account
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var a domain.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&a).Error; err != nil {
		return nil, mapError(err)
	}
	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	var out []domain.Account
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	res := r.db.WithContext(ctx).Model(&domain.Account{}).Where("id = ?", a.ID).Updates(map[string]any{
		"first_name":   a.FirstName,
		"last_name":    a.LastName,
		"phone_number": a.PhoneNumber,
	})
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Account{}, id).Error
}
