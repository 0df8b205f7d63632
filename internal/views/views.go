// Package views renders the HTML pages of eventdesk
package views

import (
	"bytes"
	"context"
	"embed"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pkg/errors"

	"github.com/derWhity/eventdesk/internal/models"
)

//go:embed static
var staticFS embed.FS

// ErrNoComponent is returned when Render is called without a component
var ErrNoComponent = errors.New("no page component provided")

// EventsPage is the data shown by the event list - optionally together with the dialog for adding a new event
type EventsPage struct {
	Title    string
	Events   []models.Event
	Adding   bool
	Form     models.NewEvent
	Statuses []models.EventStatus
	// Message shown inside the dialog when the last submission was rejected
	FormError string
}

// EventPage is the data shown on the detail page of an event
type EventPage struct {
	Title string
	Event models.Event
}

// NotFoundPage is shown when a requested page or event does not exist
type NotFoundPage struct {
	Title   string
	Message string
}

// Render writes the given component with the given status code
// Nothing is written when the component fails.
func Render(ctx context.Context, w http.ResponseWriter, status int, c templ.Component) error {
	if c == nil {
		return ErrNoComponent
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return errors.Wrap(err, "Render: Failed to render page")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Static returns a handler serving the embedded static assets below /static/
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
