package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/pokemon-review/internal/model"
	"github.com/deppfellow/pokemon-review/internal/server"
	"github.com/deppfellow/pokemon-review/internal/service"
)

type CountryHandler struct {
	Handler
	service *service.CountryService
}

func NewCountryHandler(s *server.Server, countryService *service.CountryService) *CountryHandler {
	return &CountryHandler{
		Handler: NewHandler(s),
		service: countryService,
	}
}

func (h *CountryHandler) GetCountries(c echo.Context, _ *model.EmptyRequest) ([]model.Country, error) {
	return h.service.List(c.Request().Context())
}

func (h *CountryHandler) GetCountry(c echo.Context, req *model.IDRequest) (*model.Country, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *CountryHandler) GetCountryOfOwner(c echo.Context, req *model.OwnerIDRequest) (*model.Country, error) {
	return h.service.GetByOwner(c.Request().Context(), req.OwnerID)
}

func (h *CountryHandler) GetOwnersFromCountry(c echo.Context, req *model.IDRequest) ([]model.Owner, error) {
	return h.service.ListOwners(c.Request().Context(), req.ID)
}

func (h *CountryHandler) CreateCountry(c echo.Context, req *model.CreateCountryRequest) (*model.Country, error) {
	return h.service.Create(c.Request().Context(), req)
}

func (h *CountryHandler) UpdateCountry(c echo.Context, req *model.UpdateCountryRequest) error {
	return h.service.Update(c.Request().Context(), req)
}

func (h *CountryHandler) DeleteCountry(c echo.Context, req *model.IDRequest) error {
	return h.service.Delete(c.Request().Context(), req.ID)
}
