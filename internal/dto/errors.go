package dto

// BaseError is the root error format returned by every endpoint.
// Code is machine-oriented (snake_case), Message is short human-readable
// text, Details carries an optional explanation fragment, Fields is used
// for validation errors.
type BaseError struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError describes a violation on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// Semantic wrappers share the BaseError JSON shape; they exist to keep
// swagger @Failure annotations readable.

// ValidationErrorResponse 400, code "validation_error"
type ValidationErrorResponse BaseError

// BadRequestErrorResponse 400, code "bad_request". Domain rejections:
// insufficient stock, mixed currencies, payment mismatch, duplicate
// verification.
type BadRequestErrorResponse BaseError

// NotFoundErrorResponse 404, code "not_found"
type NotFoundErrorResponse BaseError

// InternalErrorResponse 500, code "internal_error"
type InternalErrorResponse BaseError

func NewValidationError(msg string, fields []FieldError) ValidationErrorResponse {
	return ValidationErrorResponse(BaseError{Code: "validation_error", Message: msg, Fields: fields})
}
func NewBadRequestError(msg string) BadRequestErrorResponse {
	return BadRequestErrorResponse(BaseError{Code: "bad_request", Message: msg})
}
func NewNotFoundError(msg string) NotFoundErrorResponse {
	return NotFoundErrorResponse(BaseError{Code: "not_found", Message: msg})
}
func NewInternalError(details string) InternalErrorResponse {
	return InternalErrorResponse(BaseError{Code: "internal_error", Message: "internal server error", Details: details})
}
