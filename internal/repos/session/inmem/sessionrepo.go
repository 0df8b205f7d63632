// Package inmem provides a session repository that holds the session data in-memory
package inmem

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/derWhity/eventdesk/internal/log"
	"github.com/derWhity/eventdesk/internal/models"
	"github.com/derWhity/eventdesk/internal/repos"
)

// ErrClosed is returned by all operations of a repo that has been closed
var ErrClosed = errors.New("session repository closed")

// EventRepoFactory creates the empty event collection of a new session
type EventRepoFactory func() repos.EventRepo

// sessionRequest is a generic session request that can be sent over one of the repo's channels to execute functions
// inside the control goroutine
type sessionRequest struct {
	sessionID string
	extend    bool
	answer    chan<- sessionResponse
}

// sessionResponse is a generic response to a session request that contains the answer to the request made
type sessionResponse struct {
	session *models.Session
	events  repos.EventRepo
	err     error
}

// sessionEntry is a session together with the event collection it owns
type sessionEntry struct {
	session models.Session
	events  repos.EventRepo
}

// SessionRepo is a session repository that stores the session data in-memory
type SessionRepo struct {
	// make is a channel to trigger session creation
	make chan<- sessionRequest
	// get is a channel to request a session by ID (and to extend it optionally)
	get chan<- sessionRequest
	// del is a channel to request a session to be deleted
	del chan<- sessionRequest
	// done stops the control goroutine when closed
	done chan struct{}

	expiry    time.Duration
	newEvents EventRepoFactory
	logger    *logrus.Entry
}

// New creates a new session repository instance
// Sessions expire after not being used for the given duration. Each new session gets an event collection created
// by newEvents.
func New(expiry time.Duration, newEvents EventRepoFactory, logger *logrus.Entry) *SessionRepo {
	return newRepo(expiry, newEvents, logger, time.Minute)
}

func newRepo(expiry time.Duration, newEvents EventRepoFactory, logger *logrus.Entry, purge time.Duration) *SessionRepo {
	repo := &SessionRepo{
		done:      make(chan struct{}),
		expiry:    expiry,
		newEvents: newEvents,
		logger:    logger,
	}
	// Spin up the control goroutine
	m := make(chan sessionRequest)
	g := make(chan sessionRequest)
	d := make(chan sessionRequest)
	go repo.control(m, g, d, purge)
	repo.make = m
	repo.get = g
	repo.del = d
	return repo
}

// Close stops the control goroutine. All sessions and their events are lost
func (r *SessionRepo) Close() {
	close(r.done)
}

// control is the control goroutine that runs until the repo is closed waiting for requests for managing sessions
func (r *SessionRepo) control(
	make <-chan sessionRequest,
	get <-chan sessionRequest,
	del <-chan sessionRequest,
	purgeInterval time.Duration,
) {
	sessions := map[string]*sessionEntry{}
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-r.done:
			return
		case req := <-make:
			sess := models.Session{
				ID:        uuid.NewString(),
				ExpiresAt: time.Now().Add(r.expiry),
			}
			sessions[sess.ID] = &sessionEntry{
				session: sess,
				events:  r.newEvents(),
			}
			r.logger.WithField(log.FldSession, sess.ID).Debug("Session created")
			copy := sess
			req.answer <- sessionResponse{session: &copy}
		case req := <-get:
			entry, ok := sessions[req.sessionID]
			if !ok {
				req.answer <- sessionResponse{err: repos.ErrEntityNotExisting}
				continue
			}
			if entry.session.Expired() {
				delete(sessions, req.sessionID)
				req.answer <- sessionResponse{err: repos.ErrEntityNotExisting}
				continue
			}
			if req.extend {
				entry.session.ExpiresAt = time.Now().Add(r.expiry)
			}
			copy := entry.session
			req.answer <- sessionResponse{session: &copy, events: entry.events}
		case req := <-del:
			delete(sessions, req.sessionID)
			req.answer <- sessionResponse{}
		case <-ticker.C:
			// Purge all expired sessions - their events are gone with them
			for key, entry := range sessions {
				if entry.session.Expired() {
					delete(sessions, key)
					r.logger.WithField(log.FldSession, key).Debug("Session expired")
				}
			}
		}
	}
}

func (r *SessionRepo) send(sessionID string, extend bool, channel chan<- sessionRequest) sessionResponse {
	answer := make(chan sessionResponse, 1)
	req := sessionRequest{
		sessionID: sessionID,
		extend:    extend,
		answer:    answer,
	}
	select {
	case <-r.done:
		return sessionResponse{err: ErrClosed}
	default:
	}
	select {
	case channel <- req:
		return <-answer
	case <-r.done:
		return sessionResponse{err: ErrClosed}
	}
}

// Create creates a new session with an empty event collection
func (r *SessionRepo) Create() (*models.Session, error) {
	resp := r.send("", false, r.make)
	if resp.err != nil {
		return nil, resp.err
	}
	return resp.session, nil
}

// GetByID returns the session associated with the given session ID and extends its expiry if requested
func (r *SessionRepo) GetByID(sessionID string, extend bool) (*models.Session, error) {
	resp := r.send(sessionID, extend, r.get)
	if resp.err != nil {
		return nil, resp.err
	}
	return resp.session, nil
}

// Events returns the event collection owned by the given session
func (r *SessionRepo) Events(sessionID string) (repos.EventRepo, error) {
	resp := r.send(sessionID, false, r.get)
	if resp.err != nil {
		return nil, resp.err
	}
	return resp.events, nil
}

// Delete removes a session from the session storage
func (r *SessionRepo) Delete(sessionID string) error {
	resp := r.send(sessionID, false, r.del)
	return resp.err
}
