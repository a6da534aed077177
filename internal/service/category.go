package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/deppfellow/pokemon-review/internal/model"
)

type CategoryService struct {
	logger *zerolog.Logger
	repo   CategoryRepository
}

func NewCategoryService(logger *zerolog.Logger, repo CategoryRepository) *CategoryService {
	return &CategoryService{logger: logger, repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list categories", err)
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id int) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	return getOrNotFound(s.logger, "Category", category, err)
}

func (s *CategoryService) ListPokemon(ctx context.Context, categoryID int) ([]model.Pokemon, error) {
	if err := ensureExists(ctx, s.logger, s.repo, "Category", categoryID); err != nil {
		return nil, err
	}

	pokemon, err := s.repo.ListPokemon(ctx, categoryID)
	if err != nil {
		return nil, storeError(s.logger, "list category pokemon", err)
	}
	return pokemon, nil
}

// Create stores a new category. A name already taken, ignoring case and
// surrounding whitespace, is rejected by the store.
func (s *CategoryService) Create(ctx context.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	category := req.ToCategory()

	ok, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, storeError(s.logger, "create category", err)
	}
	if !ok {
		return nil, saveFailed()
	}

	s.logger.Info().Int("category_id", category.ID).Str("name", category.Name).Msg("category created")
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, req *model.UpdateCategoryRequest) error {
	if req.PathID != req.ID {
		return idMismatch(req.PathID, req.ID)
	}
	if err := ensureExists(ctx, s.logger, s.repo, "Category", req.ID); err != nil {
		return err
	}

	ok, err := s.repo.Update(ctx, req.ToCategory())
	if err != nil {
		return storeError(s.logger, "update category", err)
	}
	if !ok {
		return saveFailed()
	}
	return nil
}

// Delete removes a category. Categories still linked to pokemon are kept
// and a conflict is returned.
func (s *CategoryService) Delete(ctx context.Context, id int) error {
	if err := ensureExists(ctx, s.logger, s.repo, "Category", id); err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return storeError(s.logger, "delete category", err)
	}
	if !ok {
		return deleteFailed()
	}
	return nil
}
