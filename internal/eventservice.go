package internal

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/derWhity/eventdesk/internal/ctxhelper"
	"github.com/derWhity/eventdesk/internal/log"
	"github.com/derWhity/eventdesk/internal/models"
)

// EventService provides service functions for working with the events of the calling session
type EventService interface {
	// List returns the session's events in the order they have been added
	List(ctx context.Context) ([]models.Event, error)
	// Get returns the session's event with the given ID
	Get(ctx context.Context, id uint64) (*models.Event, error)
	// Add validates the given data and adds a new event to the session's collection
	Add(ctx context.Context, data models.NewEvent) (*models.Event, error)
}

// -- EventService implementation --------------------------------------------------------------------------------------

type eventService struct {
	logger *logrus.Entry
}

// NewEventService creates a new event service instance
// The service works on the event collection attached to the call's context.
func NewEventService(logger *logrus.Entry) EventService {
	return &eventService{
		logger: logger,
	}
}

// List returns the session's events in the order they have been added
func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	events := ctxhelper.Events(ctx)
	if events == nil {
		return nil, ErrNoSession
	}
	return events.List(), nil
}

// Get returns the session's event with the given ID
func (s *eventService) Get(ctx context.Context, id uint64) (*models.Event, error) {
	events := ctxhelper.Events(ctx)
	if events == nil {
		return nil, ErrNoSession
	}
	ev, ok := events.Get(id)
	if !ok {
		return nil, MakeError(http.StatusNotFound, ErrCodeEventNotFound,
			fmt.Sprintf("Event #%d does not exist", id),
		)
	}
	return &ev, nil
}

// Add validates the given data and adds a new event to the session's collection
func (s *eventService) Add(ctx context.Context, data models.NewEvent) (*models.Event, error) {
	events := ctxhelper.Events(ctx)
	if events == nil {
		return nil, ErrNoSession
	}
	if err := validateNewEvent(&data); err != nil {
		return nil, err
	}
	ev := events.Add(data)
	s.logger.WithFields(logrus.Fields{
		log.FldID:        ev.ID,
		log.FldName:      ev.Name,
		log.FldEventDate: ev.Date,
	}).Info("Event created")
	return &ev, nil
}

// validateNewEvent checks the required fields of a new event and fills in the default status
// A field only counts as missing when it is empty; whitespace is a value like any other
func validateNewEvent(data *models.NewEvent) error {
	required := []struct {
		field string
		value string
	}{
		{"name", data.Name},
		{"date", data.Date},
		{"time", data.Time},
		{"location", data.Location},
	}
	for _, r := range required {
		if r.value == "" {
			return MakeErrorWithData(
				http.StatusBadRequest,
				ErrCodeRequiredFieldMissing,
				fmt.Sprintf("Event %s missing", r.field),
				map[string]string{
					"field": r.field,
				},
			)
		}
	}
	if data.Status == "" {
		data.Status = models.StatusOnSale
	}
	if !data.Status.Valid() {
		return MakeErrorWithData(
			http.StatusBadRequest,
			ErrCodeIllegalValue,
			fmt.Sprintf("Unknown event status '%s'", data.Status),
			map[string]string{
				"field": "status",
			},
		)
	}
	return nil
}
