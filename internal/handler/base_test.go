package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/pokemon-review/internal/model"
)

func TestHandle_BindsFreshRequestEachCall(t *testing.T) {
	var seen []model.CreateOwnerRequest
	endpoint := Handle(Handler{}, func(c echo.Context, req *model.CreateOwnerRequest) (*model.CreateOwnerRequest, error) {
		seen = append(seen, *req)
		return req, nil
	}, http.StatusOK, &model.CreateOwnerRequest{})

	e := echo.New()
	call := func(target, body string) int {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		if err := endpoint(e.NewContext(req, rec)); err != nil {
			return http.StatusBadRequest
		}
		return rec.Code
	}

	require.Equal(t, http.StatusOK, call("/api/owner?countryId=1", `{"first_name":"Ash","last_name":"Ketchum","gym":"Pallet"}`))
	require.Equal(t, http.StatusOK, call("/api/owner?countryId=2", `{"first_name":"Misty","last_name":"Waterflower"}`))

	require.Len(t, seen, 2)
	assert.Equal(t, "Pallet", seen[0].Gym)
	assert.Empty(t, seen[1].Gym)
	assert.Equal(t, 2, seen[1].CountryID)
}

func TestHandleNoContent(t *testing.T) {
	endpoint := HandleNoContent(Handler{}, func(c echo.Context, req *model.IDRequest) error {
		assert.Equal(t, 5, req.ID)
		return nil
	}, http.StatusNoContent, &model.IDRequest{})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/review/5", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	require.NoError(t, endpoint(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNewRequest(t *testing.T) {
	template := &model.IDRequest{ID: 3}
	fresh := newRequest(template)
	assert.NotSame(t, template, fresh)
	assert.Zero(t, fresh.ID)
}
