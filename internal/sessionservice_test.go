package internal

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/derWhity/eventdesk/internal/models"
	"github.com/derWhity/eventdesk/internal/repos"
	eventrepo "github.com/derWhity/eventdesk/internal/repos/event/inmem"
	sessionrepo "github.com/derWhity/eventdesk/internal/repos/session/inmem"
)

func newTestSessionService(t *testing.T, seq *eventrepo.Sequence) SessionService {
	logger, _ := test.NewNullLogger()
	entry := logrus.NewEntry(logger)
	sr := sessionrepo.New(time.Hour, func() repos.EventRepo { return eventrepo.New(seq, entry) }, entry)
	t.Cleanup(sr.Close)
	return NewSessionService(sr, entry)
}

func TestResumeStartsNewSession(t *testing.T) {
	s := newTestSessionService(t, eventrepo.NewSequence())
	ctx := testContext()

	sess, events, isNew, err := s.Resume(ctx, "")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEmpty(t, sess.ID)
	require.NotNil(t, events)
	assert.Empty(t, events.List())
}

func TestResumeKnownSession(t *testing.T) {
	s := newTestSessionService(t, eventrepo.NewSequence())
	ctx := testContext()

	sess, events, _, err := s.Resume(ctx, "")
	require.NoError(t, err)
	events.Add(models.NewEvent{Name: "Jazz Night"})

	again, againEvents, isNew, err := s.Resume(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, sess.ID, again.ID)
	assert.Equal(t, events.List(), againEvents.List())
}

func TestResumeUnknownSessionStartsFresh(t *testing.T) {
	s := newTestSessionService(t, eventrepo.NewSequence())
	ctx := testContext()

	sess, events, isNew, err := s.Resume(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, "does-not-exist", sess.ID)
	assert.Empty(t, events.List())
}

func TestEndDiscardsEvents(t *testing.T) {
	s := newTestSessionService(t, eventrepo.NewSequence())
	ctx := testContext()

	sess, events, _, err := s.Resume(ctx, "")
	require.NoError(t, err)
	events.Add(models.NewEvent{Name: "Jazz Night"})

	require.NoError(t, s.End(ctx, sess.ID))
	assert.NoError(t, s.End(ctx, sess.ID), "ending a session twice is harmless")

	fresh, freshEvents, isNew, err := s.Resume(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.NotEqual(t, sess.ID, fresh.ID)
	assert.Empty(t, freshEvents.List())
}
