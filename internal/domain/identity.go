package domain

import "github.com/google/uuid"

// Identity is the opaque handle of an authenticated user as issued by the
// identity service.
type Identity struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// IdentityEvent is one notification on an identity feed. A nil Identity
// means the feed's owner is signed out.
type IdentityEvent struct {
	Identity *Identity
}
