package types

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Validater interface {
	Validate() map[string]string
}

type TranslateParams struct {
	Text string `json:"text" validate:"required"`
	Dest string `json:"dest"`
}

type CurrencyParams struct {
	Amount *float64 `json:"amount" validate:"required"`
	From   string   `json:"from"`
	To     string   `json:"to"`
}

func Validate(v Validater) map[string]string {
	return v.Validate()
}

func (params *TranslateParams) Validate() map[string]string {
	return validateStruct(params)
}

func (params *CurrencyParams) Validate() map[string]string {
	return validateStruct(params)
}

func validateStruct(s any) map[string]string {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}

func NewValidationError(errors map[string]string) ValidationError {
	return ValidationError{
		Status: http.StatusUnprocessableEntity,
		Errors: errors,
	}
}

type ValidationError struct {
	Status int               `json:"status"`
	Errors map[string]string `json:"errors"`
}

func (e ValidationError) Error() string {
	return "validation failed"
}
