// Package ctxhelper provides helper functions for working with the context
package ctxhelper

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/derWhity/eventdesk/internal/models"
	"github.com/derWhity/eventdesk/internal/repos"
)

var (
	// KeySession is the context key for storing the session associated with the current call
	KeySession = ctxKey("session")
	// KeyEvents is the context key for storing the event collection of the current session
	KeyEvents = ctxKey("events")
	// KeyLogger is the context key for storing the logger in the context
	KeyLogger = ctxKey("logger")
)

// internal context key
type ctxKey string

// Session returns the session from the current context, if available
func Session(ctx context.Context) *models.Session {
	if sess, ok := ctx.Value(KeySession).(models.Session); ok {
		return &sess
	}
	return nil
}

// Events returns the event collection of the current session, if available
func Events(ctx context.Context) repos.EventRepo {
	if events, ok := ctx.Value(KeyEvents).(repos.EventRepo); ok {
		return events
	}
	return nil
}

// WithSession returns a context carrying the given session and its event collection
func WithSession(ctx context.Context, sess models.Session, events repos.EventRepo) context.Context {
	ctx = context.WithValue(ctx, KeySession, sess)
	return context.WithValue(ctx, KeyEvents, events)
}

// Logger returns the logger from the current context. If no logger is available, it panics
func Logger(ctx context.Context) *logrus.Entry {
	logger, ok := ctx.Value(KeyLogger).(*logrus.Entry)
	if ok {
		return logger
	}
	panic("No logger in context")
}

// WithLogger returns a context carrying the given logger
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
