package session

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// SignUpInput holds the registration form.
type SignUpInput struct {
	Email         string        `json:"email"          validate:"required,max=254"`
	Password      string        `json:"password"       validate:"required"`
	Name          string        `json:"name"           validate:"required,max=200"`
	Gender        domain.Gender `json:"gender"         validate:"required,oneof=Male Female"`
	ContactNumber string        `json:"contact_number" validate:"required,max=32"`
}

func (i *SignUpInput) normalize() {
	i.Email = strings.TrimSpace(i.Email)
	i.Name = strings.TrimSpace(i.Name)
	i.ContactNumber = strings.TrimSpace(i.ContactNumber)
}

// Validate checks the profile fields. Credential rules belong to the
// identity service.
func (i SignUpInput) Validate() error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.NewValidationError("input", err.Error())
	}

	errs := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := "invalid"
		switch fe.Tag() {
		case "required":
			msg = "required"
		case "max":
			msg = "too long"
		case "oneof":
			msg = "must be Male or Female"
		}
		errs = append(errs, domain.FieldError{Field: fieldName(fe.Field()), Message: msg})
	}
	return domain.NewValidationErrors(errs)
}

// profile returns the exact record written to the user-record store.
func (i SignUpInput) profile(userID uuid.UUID) domain.Profile {
	return domain.Profile{
		UserID:        userID,
		Name:          i.Name,
		Gender:        i.Gender,
		ContactNumber: i.ContactNumber,
		Email:         i.Email,
	}
}

func fieldName(f string) string {
	switch f {
	case "ContactNumber":
		return "contact_number"
	default:
		return strings.ToLower(f)
	}
}
