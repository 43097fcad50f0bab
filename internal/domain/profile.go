package domain

import (
	"time"

	"github.com/google/uuid"
)

// Gender is the self-reported gender captured at sign-up.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	}
	return false
}

// Profile is the registration record written once at sign-up, keyed by the
// identity handle.
type Profile struct {
	UserID        uuid.UUID
	Name          string
	Gender        Gender
	ContactNumber string
	Email         string
	CreatedAt     time.Time
}
