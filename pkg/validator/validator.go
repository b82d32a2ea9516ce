package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can validate bound DTOs with struct tags
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a RequestValidator ready to install on an echo instance
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate runs the struct tag rules against i
func (rv *RequestValidator) Validate(i interface{}) error {
	return rv.validate.Struct(i)
}
