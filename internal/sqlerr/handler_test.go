package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/pokemon-review/internal/errs"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleError_UniqueViolation(t *testing.T) {
	tests := []struct {
		table      string
		constraint string
		code       string
		message    string
	}{
		{"categories", "unique_categories_name", "CATEGORY_ALREADY_EXISTS", "Category with this name already exists"},
		{"countries", "unique_countries_name", "COUNTRY_ALREADY_EXISTS", "Country with this name already exists"},
		{"pokemon", "unique_pokemon_name", "POKEMON_ALREADY_EXISTS", "Pokemon with this name already exists"},
		{"reviews", "unique_reviews_title", "REVIEW_ALREADY_EXISTS", "Review with this title already exists"},
		{"pokemon_owners", "pokemon_owners_pkey", "POKEMON_OWNER_ALREADY_EXISTS", "Pokemon owner already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			pgErr := &pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				TableName:      tt.table,
				ConstraintName: tt.constraint,
			}

			httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert: %w", pgErr)))

			assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.Message)
			assert.True(t, httpErr.Override)
		})
	}
}

func TestHandleError_DeleteRestricted(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:      "23503",
		Severity:  "ERROR",
		Message:   `update or delete on table "categories" violates foreign key constraint "pokemon_categories_category_id_fkey" on table "pokemon_categories"`,
		TableName: "pokemon_categories",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusConflict, httpErr.Status)
	assert.Equal(t, "CATEGORY_IN_USE", httpErr.Code)
	assert.Equal(t, "Category is still referenced by other records", httpErr.Message)
}

func TestHandleError_MissingReference(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:      "23503",
		Severity:  "ERROR",
		Message:   `insert or update on table "owners" violates foreign key constraint "owners_country_id_fkey"`,
		Detail:    `Key (country_id)=(7) is not present in table "countries".`,
		TableName: "owners",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "COUNTRY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "The referenced country does not exist", httpErr.Message)
}

func TestHandleError_NotNullAndCheck(t *testing.T) {
	notNull := asHTTPError(t, HandleError(&pgconn.PgError{
		Code:       "23502",
		TableName:  "owners",
		ColumnName: "first_name",
	}))
	assert.Equal(t, http.StatusBadRequest, notNull.Status)
	assert.Equal(t, "OWNER_REQUIRED", notNull.Code)
	assert.Equal(t, "The First Name is required", notNull.Message)
	require.Len(t, notNull.Errors, 1)
	assert.Equal(t, "first_name", notNull.Errors[0].Field)

	check := asHTTPError(t, HandleError(&pgconn.PgError{
		Code:      "23514",
		TableName: "reviews",
	}))
	assert.Equal(t, http.StatusBadRequest, check.Status)
	assert.Equal(t, "REVIEW_INVALID", check.Code)
}

func TestHandleError_Passthrough(t *testing.T) {
	original := errs.NewConflictError("busy", true, nil)
	assert.Same(t, original, HandleError(original))
	assert.Nil(t, HandleError(nil))
}

func TestHandleError_NoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("get category: %w", pgx.ErrNoRows)))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestHandleError_Unknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)

	other := asHTTPError(t, HandleError(&pgconn.PgError{Code: "40001"}))
	assert.Equal(t, http.StatusInternalServerError, other.Status)
}

func TestErrCodeAndConvert(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR", Message: "duplicate key"}
	sqlErr := ConvertPgError(pgErr)

	assert.Equal(t, UniqueViolation, ErrCode(fmt.Errorf("wrapped: %w", sqlErr)))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
	assert.Equal(t, SeverityError, sqlErr.Severity)
	assert.ErrorIs(t, sqlErr, pgErr)
	assert.Equal(t, "ERROR 23505: duplicate key", sqlErr.Error())
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("bogus"))
}
