package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// UnitService exposes role-scoped unit CRUD. Creating a unit requires the
// parent property to be within the principal's property scope, so landlords
// add units only to owned properties and managers only to managed ones.
type UnitService struct {
	units      ports.UnitRepository
	properties ports.PropertyRepository
	logger     zerolog.Logger
}

func NewUnitService(units ports.UnitRepository, properties ports.PropertyRepository, logger zerolog.Logger) *UnitService {
	return &UnitService{units: units, properties: properties, logger: logger}
}

func (s *UnitService) Create(ctx context.Context, principal domain.Principal, input ports.CreateUnitInput) (*domain.Unit, error) {
	if input.UnitNumber == "" {
		return nil, fmt.Errorf("%w: unit_number is required", domain.ErrValidation)
	}
	if _, err := s.properties.FindByID(ctx, input.PropertyID, ScopeFor(principal, domain.ResourceProperties)); err != nil {
		return nil, err
	}
	rent, err := parseMoney(input.Rent)
	if err != nil {
		return nil, err
	}
	status := domain.UnitAvailable
	if input.Status != "" {
		if status, err = domain.ParseUnitStatus(input.Status); err != nil {
			return nil, fmt.Errorf("%w: unknown unit status %q", domain.ErrValidation, input.Status)
		}
	}

	unit := &domain.Unit{
		PropertyID: input.PropertyID,
		UnitNumber: input.UnitNumber,
		Size:       input.Size,
		Rent:       rent,
		Status:     status,
	}
	if err := s.units.Create(ctx, unit); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("unit_id", unit.ID).Uint("property_id", unit.PropertyID).Msg("unit created")
	return unit, nil
}

func (s *UnitService) Get(ctx context.Context, principal domain.Principal, id uint) (*domain.Unit, error) {
	return s.units.FindByID(ctx, id, ScopeFor(principal, domain.ResourceUnits))
}

func (s *UnitService) List(ctx context.Context, principal domain.Principal) ([]domain.Unit, error) {
	return s.units.List(ctx, ScopeFor(principal, domain.ResourceUnits))
}

func (s *UnitService) Update(ctx context.Context, principal domain.Principal, id uint, input ports.UpdateUnitInput) (*domain.Unit, error) {
	unit, err := s.units.FindByID(ctx, id, ScopeFor(principal, domain.ResourceUnits))
	if err != nil {
		return nil, err
	}
	if input.UnitNumber != nil {
		unit.UnitNumber = *input.UnitNumber
	}
	if input.Size != nil {
		unit.Size = *input.Size
	}
	if input.Rent != nil {
		rent, err := parseMoney(*input.Rent)
		if err != nil {
			return nil, err
		}
		unit.Rent = rent
	}
	if input.Status != nil {
		status, err := domain.ParseUnitStatus(*input.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown unit status %q", domain.ErrValidation, *input.Status)
		}
		unit.Status = status
	}
	if err := s.units.Update(ctx, unit); err != nil {
		return nil, err
	}
	return unit, nil
}

func (s *UnitService) Delete(ctx context.Context, principal domain.Principal, id uint) error {
	if _, err := s.units.FindByID(ctx, id, ScopeFor(principal, domain.ResourceUnits)); err != nil {
		return err
	}
	if err := s.units.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("unit_id", id).Msg("unit deleted")
	return nil
}

// parseMoney parses a fixed-point amount, rejecting negatives. Amounts are
// rounded to two places to match the decimal(10,2) columns.
func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: amount is required", domain.ErrValidation)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", domain.ErrValidation, s)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	return d.Round(2), nil
}
