package sessions

import (
	"time"

	"github.com/google/uuid"
)

// Session is an idea session: a titled, owned, ordered collection of idea
// strings. The owner is implicit in the request scoping and never serialized.
type Session struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Ideas       []string  `json:"ideas"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SessionRequest is the request body for creating or replacing a session.
// Title validation happens in the service so that whitespace-only titles are
// rejected consistently.
type SessionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ideas       []string `json:"ideas"`
}
