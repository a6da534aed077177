package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deppfellow/pokemon-review/internal/errs"
)

var (
	// update or delete on table "categories" violates foreign key constraint ...
	deletedTableRe = regexp.MustCompile(`update or delete on table "([^"]+)"`)

	// Key (country_id)=(7) is not present in table "countries".
	missingTableRe = regexp.MustCompile(`is not present in table "([^"]+)"`)

	uniqueKeyRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)
)

// entityNames holds display names for tables whose plural is not a plain
// trailing "s".
var entityNames = map[string]string{
	"categories":         "category",
	"countries":          "country",
	"pokemon":            "pokemon",
	"pokemon_categories": "pokemon_category",
	"pokemon_owners":     "pokemon_owner",
}

// ErrCode reports the Code of the first *Error in err's chain, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

// ConvertPgError classifies a raw driver error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		Detail:         src.Detail,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// IsDeleteRestricted reports whether err is a foreign key violation raised
// while removing a row that is still referenced.
func (e *Error) IsDeleteRestricted() bool {
	return e.Code == ForeignKeyViolation && strings.HasPrefix(e.Message, "update or delete on table")
}

// singular returns the snake_case entity name for a table.
func singular(table string) string {
	if table == "" {
		return "record"
	}
	if name, ok := entityNames[table]; ok {
		return name
	}
	if strings.HasSuffix(table, "s") && len(table) > 1 {
		return table[:len(table)-1]
	}
	return table
}

// generateErrorCode builds codes like CATEGORY_ALREADY_EXISTS.
func generateErrorCode(entity string, action string) string {
	return fmt.Sprintf("%s_%s", strings.ToUpper(entity), action)
}

// humanizeText turns "first_name" into "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// sentenceCase turns "pokemon_owner" into "Pokemon owner".
func sentenceCase(text string) string {
	words := strings.ReplaceAll(text, "_", " ")
	if words == "" {
		return ""
	}
	return strings.ToUpper(words[:1]) + words[1:]
}

// extractColumnForUniqueViolation reads the column from constraint names
// shaped "unique_<table>_<column>" or "<table>_<column>_key".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := uniqueKeyRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

func firstSubmatch(re *regexp.Regexp, text string) string {
	if matches := re.FindStringSubmatch(text); len(matches) > 1 {
		return matches[1]
	}
	return ""
}

// HandleError converts a database error into an *errs.HTTPError.
//
//   - *errs.HTTPError passes through unchanged
//   - unique violation becomes 422 <ENTITY>_ALREADY_EXISTS
//   - foreign key violation on delete becomes 409 <ENTITY>_IN_USE
//   - any other foreign key violation becomes 404 <REFERENCED>_NOT_FOUND
//   - not null and check violations become 400
//   - pgx.ErrNoRows becomes 404
//   - anything else becomes 500
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return fromSQLError(ConvertPgError(pgerr))
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}

func fromSQLError(sqlErr *Error) error {
	switch sqlErr.Code {
	case UniqueViolation:
		entity := singular(sqlErr.TableName)
		code := generateErrorCode(entity, "ALREADY_EXISTS")
		message := fmt.Sprintf("%s already exists", sentenceCase(entity))
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			message = fmt.Sprintf("%s with this %s already exists", sentenceCase(entity), strings.ToLower(humanizeText(column)))
		}
		return errs.NewUnprocessableEntityError(message, true, &code)

	case ForeignKeyViolation:
		if sqlErr.IsDeleteRestricted() {
			entity := singular(firstSubmatch(deletedTableRe, sqlErr.Message))
			code := generateErrorCode(entity, "IN_USE")
			message := fmt.Sprintf("%s is still referenced by other records", sentenceCase(entity))
			return errs.NewConflictError(message, true, &code)
		}

		entity := singular(firstSubmatch(missingTableRe, sqlErr.Detail))
		code := generateErrorCode(entity, "NOT_FOUND")
		message := fmt.Sprintf("The referenced %s does not exist", strings.ReplaceAll(entity, "_", " "))
		return errs.NewNotFoundError(message, true, &code)

	case NotNullViolation:
		entity := singular(sqlErr.TableName)
		code := generateErrorCode(entity, "REQUIRED")
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		fieldErrors := []errs.FieldError{{
			Field: strings.ToLower(sqlErr.ColumnName),
			Error: "is required",
		}}
		return errs.NewBadRequestError(fmt.Sprintf("The %s is required", fieldName), true, &code, fieldErrors, nil)

	case CheckViolation:
		entity := singular(sqlErr.TableName)
		code := generateErrorCode(entity, "INVALID")
		message := "One or more values do not meet required conditions"
		if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
			message = fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return errs.NewBadRequestError(message, true, &code, nil, nil)

	default:
		return errs.NewInternalServerError()
	}
}
