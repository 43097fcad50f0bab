package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/moodverse-backend/internal/domain"
)

// Error codes reported by the identity service.
const (
	CodeInvalidCredential = "auth/invalid-credential"
	CodeEmailInUse        = "auth/email-already-in-use"
	CodeInvalidArgument   = "auth/invalid-argument"
	CodeSessionExpired    = "auth/session-expired"
	CodeInternal          = "auth/internal-error"
)

// Error is a provider error whose Message is shown to the user verbatim.
type Error struct {
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

// translate turns a service error into a provider error with a user-facing
// message.
func translate(err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return &Error{Code: CodeInvalidArgument, Message: validationMessage(verr), cause: err}
	case errors.Is(err, domain.ErrAlreadyExists):
		return &Error{Code: CodeEmailInUse, Message: "The email address is already in use by another account.", cause: err}
	case errors.Is(err, domain.ErrUnauthorized):
		return &Error{Code: CodeInvalidCredential, Message: "Invalid email or password.", cause: err}
	default:
		return &Error{Code: CodeInternal, Message: "An internal error has occurred. Please try again.", cause: err}
	}
}

// translateResume reports a failed resume as an expired session.
func translateResume(err error) error {
	var pe *Error
	if errors.As(err, &pe) && pe.Code == CodeInvalidCredential {
		return &Error{Code: CodeSessionExpired, Message: "Your session has expired. Please sign in again.", cause: pe.cause}
	}
	return err
}

func validationMessage(verr *domain.ValidationError) string {
	if len(verr.Errors) == 0 {
		return "Invalid input."
	}

	fe := verr.Errors[0]
	field := strings.ReplaceAll(fe.Field, "_", " ")
	if field != "" {
		field = strings.ToUpper(field[:1]) + field[1:]
	}

	switch {
	case fe.Field == "email" && fe.Message != "required":
		return "The email address is badly formatted."
	case fe.Message == "required":
		return fmt.Sprintf("%s is required.", field)
	default:
		return fmt.Sprintf("%s %s.", field, fe.Message)
	}
}
