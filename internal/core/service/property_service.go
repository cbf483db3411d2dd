package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/ports"
)

// PropertyService exposes role-scoped property CRUD. Reads resolve through
// the authorization filter; update and delete resolve the target through the
// same read scope, so rows outside the principal's scope are reported absent.
type PropertyService struct {
	properties ports.PropertyRepository
	logger     zerolog.Logger
}

func NewPropertyService(properties ports.PropertyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{properties: properties, logger: logger}
}

// Create records the creating principal as owner unconditionally. The
// route-level role gate is the only check on who may create.
func (s *PropertyService) Create(ctx context.Context, principal domain.Principal, input ports.CreatePropertyInput) (*domain.Property, error) {
	if input.Name == "" || input.Address == "" {
		return nil, fmt.Errorf("%w: name and address are required", domain.ErrValidation)
	}
	propType := domain.PropertyResidential
	if input.Type != "" {
		var err error
		if propType, err = domain.ParsePropertyType(input.Type); err != nil {
			return nil, fmt.Errorf("%w: unknown property type %q", domain.ErrValidation, input.Type)
		}
	}

	property := &domain.Property{
		OwnerID:     principal.AccountID,
		Name:        input.Name,
		Address:     input.Address,
		Description: input.Description,
		Type:        propType,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, err
	}

	s.logger.Info().Uint("property_id", property.ID).Uint("owner_id", principal.AccountID).Msg("property created")
	return property, nil
}

func (s *PropertyService) Get(ctx context.Context, principal domain.Principal, id uint) (*domain.Property, error) {
	return s.properties.FindByID(ctx, id, ScopeFor(principal, domain.ResourceProperties))
}

func (s *PropertyService) List(ctx context.Context, principal domain.Principal) ([]domain.Property, error) {
	return s.properties.List(ctx, ScopeFor(principal, domain.ResourceProperties))
}

func (s *PropertyService) Update(ctx context.Context, principal domain.Principal, id uint, input ports.UpdatePropertyInput) (*domain.Property, error) {
	property, err := s.properties.FindByID(ctx, id, ScopeFor(principal, domain.ResourceProperties))
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Type != nil {
		propType, err := domain.ParsePropertyType(*input.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown property type %q", domain.ErrValidation, *input.Type)
		}
		property.Type = propType
	}
	if err := s.properties.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) Delete(ctx context.Context, principal domain.Principal, id uint) error {
	if _, err := s.properties.FindByID(ctx, id, ScopeFor(principal, domain.ResourceProperties)); err != nil {
		return err
	}
	if err := s.properties.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Uint("property_id", id).Msg("property deleted")
	return nil
}
