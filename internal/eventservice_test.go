package internal

import (
	"context"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derWhity/eventdesk/internal/ctxhelper"
	"github.com/derWhity/eventdesk/internal/log"
	"github.com/derWhity/eventdesk/internal/models"
	"github.com/derWhity/eventdesk/internal/repos"
	eventrepo "github.com/derWhity/eventdesk/internal/repos/event/inmem"
)

func sessionContext(events repos.EventRepo) context.Context {
	return ctxhelper.WithSession(testContext(), models.Session{ID: "test"}, events)
}

func newEventRepo() repos.EventRepo {
	logger, _ := test.NewNullLogger()
	return eventrepo.New(eventrepo.NewSequence(), logrus.NewEntry(logger))
}

func newTestEventService() EventService {
	logger, _ := test.NewNullLogger()
	return NewEventService(logrus.NewEntry(logger))
}

func validEvent() models.NewEvent {
	return models.NewEvent{
		Name:     "Jazz Night",
		Date:     "2024-07-01",
		Time:     "19:00",
		Location: "Hall A",
		Status:   models.StatusOnSale,
	}
}

func assertHTTPError(t *testing.T, err error, status int, code string) *HTTPError {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*HTTPError)
	require.True(t, ok, "expected an *HTTPError, got %T", err)
	assert.Equal(t, status, httpErr.Status())
	assert.Equal(t, code, httpErr.ErrorCode())
	return httpErr
}

func TestAddAndList(t *testing.T) {
	s := newTestEventService()
	ctx := sessionContext(newEventRepo())

	lst, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, lst)

	ev, err := s.Add(ctx, validEvent())
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ev.ID)
	assert.Equal(t, "/events/1", ev.URL)
	assert.Equal(t, "/events/jazz-night.jpg", ev.ImgURL)
	assert.Equal(t, "/events/jazz-night-thumb.jpg", ev.ThumbURL)
	assert.Equal(t, 100, ev.TicketsAvailable)
	assert.Equal(t, 0, ev.TicketsSold)

	lst, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Event{*ev}, lst)
}

func TestAddRejectsMissingFields(t *testing.T) {
	s := newTestEventService()
	events := newEventRepo()
	ctx := sessionContext(events)

	for _, field := range []string{"name", "date", "time", "location"} {
		data := validEvent()
		switch field {
		case "name":
			data.Name = ""
		case "date":
			data.Date = ""
		case "time":
			data.Time = ""
		case "location":
			data.Location = ""
		}
		_, err := s.Add(ctx, data)
		httpErr := assertHTTPError(t, err, http.StatusBadRequest, ErrCodeRequiredFieldMissing)
		assert.Equal(t, map[string]string{"field": field}, httpErr.Data())
	}
	assert.Empty(t, events.List(), "rejected events must not be stored")
}

func TestAddAcceptsWhitespaceValues(t *testing.T) {
	s := newTestEventService()
	events := newEventRepo()
	ctx := sessionContext(events)

	data := models.NewEvent{Name: "   ", Date: " ", Time: "\t", Location: "\n"}
	ev, err := s.Add(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, "   ", ev.Name)
	assert.Equal(t, "\t", ev.Time)
	assert.Equal(t, "/events/.jpg", ev.ImgURL)
	assert.Len(t, events.List(), 1)
}

func TestAddLogsCreatedEvent(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := NewEventService(logrus.NewEntry(logger))
	ctx := sessionContext(newEventRepo())

	ev, err := s.Add(ctx, validEvent())
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "Event created", entry.Message)
	assert.Equal(t, ev.ID, entry.Data[log.FldID])
	assert.Equal(t, "Jazz Night", entry.Data[log.FldName])
	assert.Equal(t, "2024-07-01", entry.Data[log.FldEventDate])
}

func TestAddStatus(t *testing.T) {
	s := newTestEventService()
	ctx := sessionContext(newEventRepo())

	data := validEvent()
	data.Status = ""
	ev, err := s.Add(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnSale, ev.Status)

	data.Status = models.StatusCancelled
	ev, err = s.Add(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, ev.Status)

	data.Status = "Postponed"
	_, err = s.Add(ctx, data)
	httpErr := assertHTTPError(t, err, http.StatusBadRequest, ErrCodeIllegalValue)
	assert.Equal(t, map[string]string{"field": "status"}, httpErr.Data())
}

func TestAddKeepsValuesVerbatim(t *testing.T) {
	s := newTestEventService()
	ctx := sessionContext(newEventRepo())

	data := validEvent()
	data.Name = "  Spaced Out  "
	ev, err := s.Add(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, "  Spaced Out  ", ev.Name)
	assert.Equal(t, "/events/spaced-out.jpg", ev.ImgURL)
}

func TestGet(t *testing.T) {
	s := newTestEventService()
	ctx := sessionContext(newEventRepo())

	added, err := s.Add(ctx, validEvent())
	require.NoError(t, err)

	ev, err := s.Get(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, ev)

	_, err = s.Get(ctx, 99)
	assertHTTPError(t, err, http.StatusNotFound, ErrCodeEventNotFound)
}

func TestCallsWithoutSession(t *testing.T) {
	s := newTestEventService()
	ctx := testContext()

	_, err := s.List(ctx)
	assert.Equal(t, ErrNoSession, err)
	_, err = s.Get(ctx, 1)
	assert.Equal(t, ErrNoSession, err)
	_, err = s.Add(ctx, validEvent())
	assert.Equal(t, ErrNoSession, err)
}
