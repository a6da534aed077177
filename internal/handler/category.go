package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
)

type CategoryHandler struct {
	Handler
	service *service.CategoryService
}

func NewCategoryHandler(s *server.Server, categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler: NewHandler(s),
		service: categoryService,
	}
}

func (h *CategoryHandler) GetCategories(c echo.Context, _ *model.EmptyRequest) ([]model.Category, error) {
	return h.service.List(c.Request().Context())
}

func (h *CategoryHandler) GetCategory(c echo.Context, req *model.IDRequest) (*model.Category, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *CategoryHandler) GetPokemonByCategory(c echo.Context, req *model.IDRequest) ([]model.Pokemon, error) {
	return h.service.ListPokemon(c.Request().Context(), req.ID)
}

func (h *CategoryHandler) CreateCategory(c echo.Context, req *model.CreateCategoryRequest) (*model.Category, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context, req *model.UpdateCategoryRequest) error {
	return h.service.Update(c.Request().Context(), req)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context, req *model.IDRequest) error {
	return h.service.Delete(c.Request().Context(), req.ID)
}
