// Package inmem provides an event repository that keeps the events of one session in memory
package inmem

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/derWhity/eventdesk/internal/log"
	"github.com/derWhity/eventdesk/internal/models"
	"github.com/derWhity/eventdesk/internal/repos"
	"github.com/derWhity/eventdesk/internal/slug"
)

// EventRepo is an append-only, in-memory event collection
type EventRepo struct {
	mu     sync.RWMutex
	events []models.Event
	ids    repos.IDSource
	logger *logrus.Entry
}

// New creates a new, empty event repository drawing its IDs from the given source
func New(ids repos.IDSource, logger *logrus.Entry) *EventRepo {
	return &EventRepo{
		ids:    ids,
		logger: logger,
	}
}

// List returns all events in the order they have been added
func (r *EventRepo) List() []models.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ret := make([]models.Event, len(r.events))
	copy(ret, r.events)
	return ret
}

// Add derives a full event from the given data, appends it and returns the created event
func (r *EventRepo) Add(data models.NewEvent) models.Event {
	s := slug.Make(data.Name)
	r.mu.Lock()
	defer r.mu.Unlock()
	// The ID is drawn under the lock, so the collection stays ordered by ID
	id := r.ids.Next()
	ev := models.Event{
		ID:                 id,
		Name:               data.Name,
		URL:                fmt.Sprintf("/events/%d", id),
		Date:               data.Date,
		Time:               data.Time,
		Location:           data.Location,
		TotalRevenue:       models.DefaultTotalRevenue,
		TotalRevenueChange: models.DefaultChange,
		TicketsAvailable:   models.DefaultTicketsAvailable,
		TicketsSold:        0,
		TicketsSoldChange:  models.DefaultChange,
		PageViews:          models.DefaultPageViews,
		PageViewsChange:    models.DefaultChange,
		Status:             data.Status,
		ImgURL:             fmt.Sprintf("/events/%s.jpg", s),
		ThumbURL:           fmt.Sprintf("/events/%s-thumb.jpg", s),
	}
	r.events = append(r.events, ev)
	r.logger.WithFields(logrus.Fields{
		log.FldID:   id,
		log.FldSlug: s,
	}).Debug("Added event")
	return ev
}

// Get returns the event with the given ID
func (r *EventRepo) Get(id uint64) (models.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ev := range r.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return models.Event{}, false
}
