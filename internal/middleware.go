package internal

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-kit/kit/endpoint"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/derWhity/eventdesk/internal/ctxhelper"
	"github.com/derWhity/eventdesk/internal/log"
)

const (
	// SessionCookie is the name of the cookie carrying the session ID
	SessionCookie = "eventdesk_session"
	// SessionHeader is the header API clients may use instead of the cookie
	SessionHeader = "X-Session-Token"
)

// EnsureSession is a middleware that checks if there is a session with an event collection attached to the call
func EnsureSession(next endpoint.Endpoint) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (response interface{}, err error) {
		if ctxhelper.Session(ctx) == nil || ctxhelper.Events(ctx) == nil {
			return nil, ErrNoSession
		}
		return next(ctx, request)
	}
}

// makeRequestLogger returns a middleware putting the logger into the request's context and logging every request
// after it has been handled
func makeRequestLogger(logger *logrus.Entry) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			reqLogger := logger.WithField(log.FldIP, r.RemoteAddr)
			next.ServeHTTP(rec, r.WithContext(ctxhelper.WithLogger(r.Context(), reqLogger)))
			reqLogger.WithFields(logrus.Fields{
				log.FldMethod:   r.Method,
				log.FldPath:     r.URL.Path,
				log.FldStatus:   rec.status,
				log.FldDuration: time.Since(start),
			}).Info("Request handled")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// makeSessionMiddleware returns a middleware that attaches the caller's session and its events to the request's
// context. Callers without a valid session get a new one.
func makeSessionMiddleware(s SessionService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := strings.TrimSpace(r.Header.Get(SessionHeader))
			fromHeader := token != ""
			if !fromHeader {
				if c, err := r.Cookie(SessionCookie); err == nil {
					token = c.Value
				}
			}
			sess, events, isNew, err := s.Resume(ctx, token)
			if err != nil {
				ctxhelper.Logger(ctx).WithError(err).Error("Failed to attach session")
				encodeError(ctx, err, w)
				return
			}
			if isNew {
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    sess.ID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			// The ID is only echoed to clients that sent it as a header, the cookie stays HttpOnly
			if fromHeader {
				w.Header().Set(SessionHeader, sess.ID)
			}
			ctx = ctxhelper.WithSession(ctx, *sess, events)
			ctx = ctxhelper.WithLogger(ctx, ctxhelper.Logger(ctx).WithField(log.FldSession, sess.ID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
