package core

import (
	"github.com/go-playground/validator/v10"

	"plancheck/internal/types"
)

// Validator wraps go-playground/validator and translates validation
// failures into the AppError the response layer understands.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the domain tags registered:
//
//	cycle    - the value is a supported billing cycle (1, 12, 24)
//	currency - the value is a supported ISO currency code
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("cycle", func(fl validator.FieldLevel) bool {
		return types.Cycle(fl.Field().Int()).IsValid()
	})
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return types.Currency(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v}
}

// ValidateStruct checks the tagged fields of s and returns a 400-class
// AppError naming the first offending fields, or nil.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return types.NewAppError(types.ErrCodeValidationMissingField, "request validation failed", err)
	}

	details := make(map[string]any, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = fe.Tag()
	}
	return types.NewAppErrorWithDetails(
		types.ErrCodeValidationMissingField,
		"request validation failed",
		err,
		details,
	)
}
