// Package errs defines the error shape returned to API clients.
//
// Every failure that reaches the HTTP layer is expressed as an *HTTPError so
// the global error handler can render a consistent JSON body:
//
//	{"code":"POKEMON_ALREADY_EXISTS","message":"Pokemon already exists","status":422,...}
package errs

import "strings"

// FieldError describes a single invalid request field.
//
//	{ "field": "rating", "error": "must be at most 5" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType tells the client what to do next.
type ActionType string

const (
	ActionTypeRedirect ActionType = "redirect"
)

// Action is an optional follow-up instruction for the client.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is an error that knows its HTTP status and client-facing code.
//
// Override marks messages that are safe to show verbatim. Errors carries
// per-field validation failures.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is matches any *HTTPError, so errors.Is(err, &HTTPError{}) reports whether
// err already carries an HTTP shape.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of e with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	clone := *e
	clone.Message = message
	return &clone
}

// MakeUpperCaseWithUnderscores turns status text into a code,
// e.g. "Unprocessable Entity" becomes "UNPROCESSABLE_ENTITY".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
