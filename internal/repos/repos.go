// Package repos contains the repository interfaces needed in eventdesk
// It exists to prevent circular dependencies between the services and the repo implementations
package repos

import (
	"fmt"

	"github.com/derWhity/eventdesk/internal/models"
)

var (
	// ErrEntityNotExisting is returned by a repository when a requested entity does not exist
	ErrEntityNotExisting = fmt.Errorf("entity does not exist")
)

// IDSource hands out identifiers for newly created entities
type IDSource interface {
	// Next returns the next free identifier. Identifiers are positive, strictly increasing and never handed out twice
	Next() uint64
}

// EventRepo holds the ordered collection of events of a single session
// The repo never fails - validating the input is the caller's duty
type EventRepo interface {
	// List returns all events in the order they have been added
	List() []models.Event
	// Add derives a full event from the given data, appends it and returns the created event
	Add(ev models.NewEvent) models.Event
	// Get returns the event with the given ID
	Get(id uint64) (models.Event, bool)
}

// SessionRepo stores the active browser sessions together with the event collection each of them owns
type SessionRepo interface {
	// Create creates a new session with an empty event collection
	Create() (*models.Session, error)
	// GetByID returns the session associated with the given session ID and extends its expiry if requested
	GetByID(sessionID string, extend bool) (*models.Session, error)
	// Events returns the event collection owned by the given session
	Events(sessionID string) (EventRepo, error)
	// Delete removes a session and discards its event collection
	Delete(sessionID string) error
}
