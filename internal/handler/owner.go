package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
)

type OwnerHandler struct {
	Handler
	service *service.OwnerService
}

func NewOwnerHandler(s *server.Server, ownerService *service.OwnerService) *OwnerHandler {
	return &OwnerHandler{
		Handler: NewHandler(s),
		service: ownerService,
	}
}

func (h *OwnerHandler) GetOwners(c echo.Context, _ *model.EmptyRequest) ([]model.Owner, error) {
	return h.service.List(c.Request().Context())
}

func (h *OwnerHandler) GetOwner(c echo.Context, req *model.IDRequest) (*model.Owner, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *OwnerHandler) GetPokemonByOwner(c echo.Context, req *model.IDRequest) ([]model.Pokemon, error) {
	return h.service.ListPokemon(c.Request().Context(), req.ID)
}

func (h *OwnerHandler) GetOwnersOfPokemon(c echo.Context, req *model.PokemonIDRequest) ([]model.Owner, error) {
	return h.service.ListByPokemon(c.Request().Context(), req.PokemonID)
}

// CreateOwner reads the owner's country from the countryId query parameter.
func (h *OwnerHandler) CreateOwner(c echo.Context, req *model.CreateOwnerRequest) (*model.Owner, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *OwnerHandler) UpdateOwner(c echo.Context, req *model.UpdateOwnerRequest) error {
	return h.service.Update(c.Request().Context(), req)
}

func (h *OwnerHandler) DeleteOwner(c echo.Context, req *model.IDRequest) error {
	return h.service.Delete(c.Request().Context(), req.ID)
}
