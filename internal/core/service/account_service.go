package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// AccountService is the admin-only account directory. Creation delegates to
// the auth service so password hashing and role validation live in one place.
type AccountService struct {
	accounts ports.AccountRepository
	auth     ports.AuthService
	logger   zerolog.Logger
}

func NewAccountService(accounts ports.AccountRepository, auth ports.AuthService, logger zerolog.Logger) *AccountService {
	return &AccountService{accounts: accounts, auth: auth, logger: logger}
}

func (s *AccountService) Create(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	return s.auth.Register(ctx, input)
}

func (s *AccountService) Get(ctx context.Context, id uint) (*domain.Account, error) {
	return s.accounts.FindByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// Update changes contact fields only. The role is immutable after
// registration: assignment logic dispatches on it and role changes are not
// modeled.
func (s *AccountService) Update(ctx context.Context, id uint, input ports.UpdateAccountInput) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.FirstName != nil {
		account.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		account.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		account.PhoneNumber = *input.PhoneNumber
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *AccountService) Delete(ctx context.Context, id uint) error {
	if _, err := s.accounts.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("account_id", id).Msg("account deleted")
	return nil
}
