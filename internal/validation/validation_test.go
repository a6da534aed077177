package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/pokemon-review/internal/errs"
	"github.com/deppfellow/pokemon-review/internal/model"
)

func newContext(method, target, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate_BindsQueryOnPost(t *testing.T) {
	c := newContext(http.MethodPost, "/api/owner?countryId=7", `{"first_name":"Ash","last_name":"Ketchum"}`)

	req := &model.CreateOwnerRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, 7, req.CountryID)
	assert.Equal(t, "Ash", req.FirstName)
}

func TestBindAndValidate_PathAndBody(t *testing.T) {
	c := newContext(http.MethodPut, "/api/category/3", `{"id":3,"name":"Fire"}`)
	c.SetParamNames("id")
	c.SetParamValues("3")

	req := &model.UpdateCategoryRequest{}
	require.NoError(t, BindAndValidate(c, req))
	assert.Equal(t, 3, req.PathID)
	assert.Equal(t, 3, req.ID)
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	c := newContext(http.MethodPost, "/api/review?reviewerId=1", `{"title":"Nice","rating":9}`)

	err := BindAndValidate(c, &model.CreateReviewRequest{})
	httpErr := requireBadRequest(t, err)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "pokemon_id", Error: "is required"},
		{Field: "rating", Error: "must not exceed 5"},
	}, httpErr.Errors)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newContext(http.MethodPost, "/api/category", `{"name":`)

	err := BindAndValidate(c, &model.CreateCategoryRequest{})
	httpErr := requireBadRequest(t, err)
	assert.Nil(t, httpErr.Errors)
	assert.NotEmpty(t, httpErr.Message)
}

func TestBindAndValidate_BadPathParam(t *testing.T) {
	c := newContext(http.MethodGet, "/api/category/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	requireBadRequest(t, BindAndValidate(c, &model.IDRequest{}))
}

type customRequest struct{}

func (customRequest) Validate() error {
	return CustomValidationErrors{{Field: "name", Message: "is reserved"}}
}

func TestBindAndValidate_CustomErrors(t *testing.T) {
	c := newContext(http.MethodGet, "/", "")

	err := BindAndValidate(c, &customRequest{})
	httpErr := requireBadRequest(t, err)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is reserved"}}, httpErr.Errors)
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":      "name",
		"FirstName": "first_name",
		"PokemonID": "pokemon_id",
		"ID":        "id",
		"PathID":    "path_id",
	}
	for in, want := range tests {
		assert.Equal(t, want, toSnakeCase(in), in)
	}
}
