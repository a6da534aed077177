package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type CountryService struct {
	logger *zerolog.Logger
	repo   CountryRepository
	owners exister
}

func NewCountryService(logger *zerolog.Logger, repo CountryRepository, owners OwnerRepository) *CountryService {
	return &CountryService{logger: logger, repo: repo, owners: owners}
}

func (s *CountryService) List(ctx context.Context) ([]model.Country, error) {
	countries, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list countries", err)
	}
	return countries, nil
}

func (s *CountryService) Get(ctx context.Context, id int) (*model.Country, error) {
	country, err := s.repo.GetByID(ctx, id)
	return getOrNotFound(s.logger, "Country", country, err)
}

// GetByOwner returns the country an owner lives in.
func (s *CountryService) GetByOwner(ctx context.Context, ownerID int) (*model.Country, error) {
	if err := ensureExists(ctx, s.logger, s.owners, "Owner", ownerID); err != nil {
		return nil, err
	}

	country, err := s.repo.GetByOwner(ctx, ownerID)
	return getOrNotFound(s.logger, "Country", country, err)
}

func (s *CountryService) ListOwners(ctx context.Context, countryID int) ([]model.Owner, error) {
	if err := ensureExists(ctx, s.logger, s.repo, "Country", countryID); err != nil {
		return nil, err
	}

	owners, err := s.repo.ListOwners(ctx, countryID)
	if err != nil {
		return nil, storeError(s.logger, "list country owners", err)
	}
	return owners, nil
}

func (s *CountryService) Create(ctx context.Context, req *model.CreateCountryRequest) (*model.Country, error) {
	country := req.ToCountry()

	ok, err := s.repo.Create(ctx, country)
	if err != nil {
		return nil, storeError(s.logger, "create country", err)
	}
	if !ok {
		return nil, saveFailed()
	}

	s.logger.Info().Int("country_id", country.ID).Str("name", country.Name).Msg("country created")
	return country, nil
}

func (s *CountryService) Update(ctx context.Context, req *model.UpdateCountryRequest) error {
	if req.PathID != req.ID {
		return idMismatch(req.PathID, req.ID)
	}
	if err := ensureExists(ctx, s.logger, s.repo, "Country", req.ID); err != nil {
		return err
	}

	ok, err := s.repo.Update(ctx, req.ToCountry())
	if err != nil {
		return storeError(s.logger, "update country", err)
	}
	if !ok {
		return saveFailed()
	}
	return nil
}

// Delete removes a country that no owner lives in.
func (s *CountryService) Delete(ctx context.Context, id int) error {
	if err := ensureExists(ctx, s.logger, s.repo, "Country", id); err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeError(s.logger, "delete country", err)
	}
	if !ok {
		return deleteFailed()
	}
	return nil
}
