// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator.Validate instance for Echo.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the HTTP server.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New()}
}

// Validate checks struct tags on bound request DTOs.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
