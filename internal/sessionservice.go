package internal

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/derWhity/eventdesk/internal/log"
	"github.com/derWhity/eventdesk/internal/models"
	"github.com/derWhity/eventdesk/internal/repos"
)

// SessionService provides functions for interacting with a browser session
type SessionService interface {
	// Resume returns the session with the given ID and its events, starting a new session if there is no valid one.
	// The returned flag tells if the session is a new one.
	Resume(ctx context.Context, sessionID string) (*models.Session, repos.EventRepo, bool, error)
	// End ends the given session, discarding its events
	End(ctx context.Context, sessionID string) error
}

// -- Session service implementation -----------------------------------------------------------------------------------

type sessionService struct {
	logger   *logrus.Entry
	sessions repos.SessionRepo
}

// NewSessionService creates a new session service instance with the provided repository
func NewSessionService(sr repos.SessionRepo, logger *logrus.Entry) SessionService {
	return &sessionService{
		logger:   logger,
		sessions: sr,
	}
}

// Resume returns the session with the given ID and its events, starting a new session if there is no valid one
func (s *sessionService) Resume(ctx context.Context, sessionID string) (*models.Session, repos.EventRepo, bool, error) {
	if sessionID != "" {
		sess, err := s.sessions.GetByID(sessionID, true)
		if err == nil {
			var events repos.EventRepo
			if events, err = s.sessions.Events(sess.ID); err == nil {
				return sess, events, false, nil
			}
		}
		if err != repos.ErrEntityNotExisting {
			s.logger.WithError(err).WithField(log.FldSession, sessionID).Error("Failed to retrieve session")
		}
	}
	sess, err := s.sessions.Create()
	if err != nil {
		return nil, nil, false, MakeErrorWithData(
			http.StatusInternalServerError,
			ErrCodeSessionFailed,
			"Failed to start a new session",
			err,
		)
	}
	events, err := s.sessions.Events(sess.ID)
	if err != nil {
		return nil, nil, false, MakeErrorWithData(
			http.StatusInternalServerError,
			ErrCodeSessionFailed,
			"Failed to start a new session",
			err,
		)
	}
	s.logger.WithField(log.FldSession, sess.ID).Info("Started new session")
	return sess, events, true, nil
}

// End ends the given session, discarding its events
func (s *sessionService) End(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(sessionID)
}
