package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
)

type PokemonHandler struct {
	Handler
	service *service.PokemonService
}

func NewPokemonHandler(s *server.Server, pokemonService *service.PokemonService) *PokemonHandler {
	return &PokemonHandler{
		Handler: NewHandler(s),
		service: pokemonService,
	}
}

func (h *PokemonHandler) GetPokemons(c echo.Context, _ *model.EmptyRequest) ([]model.Pokemon, error) {
	return h.service.List(c.Request().Context())
}

func (h *PokemonHandler) GetPokemon(c echo.Context, req *model.IDRequest) (*model.Pokemon, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *PokemonHandler) GetPokemonByName(c echo.Context, req *model.GetPokemonByNameRequest) (*model.Pokemon, error) {
	return h.service.GetByName(c.Request().Context(), req.Name)
}

func (h *PokemonHandler) GetPokemonRating(c echo.Context, req *model.IDRequest) (*model.RatingResponse, error) {
	return h.service.Rating(c.Request().Context(), req.ID)
}

// CreatePokemon links the new pokemon to the ownerId and categoryId query
// parameters.
func (h *PokemonHandler) CreatePokemon(c echo.Context, req *model.CreatePokemonRequest) (*model.Pokemon, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *PokemonHandler) UpdatePokemon(c echo.Context, req *model.UpdatePokemonRequest) error {
	return h.service.Update(c.Request().Context(), req)
}

func (h *PokemonHandler) DeletePokemon(c echo.Context, req *model.IDRequest) error {
	return h.service.Delete(c.Request().Context(), req.ID)
}
