package auth

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// RegisterInput holds parameters for email + password account creation.
type RegisterInput struct {
	Email    string `json:"email"    validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// Validate validates the register input. minPasswordLen comes from config.
func (i RegisterInput) Validate(minPasswordLen int) error {
	errs := structErrors(i)
	if i.Password != "" && len(i.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLen),
		})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginPasswordInput holds parameters for email + password login.
type LoginPasswordInput struct {
	Email    string `json:"email"    validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=72"`
}

// Validate validates the login input.
func (i LoginPasswordInput) Validate() error {
	if errs := structErrors(i); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string `json:"refresh_token" validate:"required,max=512"`
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	if errs := structErrors(i); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// structErrors runs the tag validator and converts its failures into field
// errors keyed by the json name.
func structErrors(v any) []domain.FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []domain.FieldError{{Field: "input", Message: err.Error()}}
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, domain.FieldError{Field: jsonName(fe.Field()), Message: tagMessage(fe)})
	}
	return out
}

func jsonName(field string) string {
	switch field {
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "RefreshToken":
		return "refresh_token"
	}
	return field
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "invalid email format"
	case "max":
		return "too long"
	}
	return "invalid"
}
