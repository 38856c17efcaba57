package docanalyzer

import (
	"github.com/aisa-it/docanalyzer/internal/docanalyzer/report"
	"github.com/go-playground/validator"
)

type RequestValidator struct {
	validator *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	err := v.RegisterValidation("operation", operationValidator)
	if err != nil {
		return nil
	}
	return &RequestValidator{v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.validator.Struct(i); err != nil {
		_, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil
		}
		return err
	}
	return nil
}

func operationValidator(fl validator.FieldLevel) bool {
	_, err := report.ParseOperation(fl.Field().String())
	return err == nil
}
