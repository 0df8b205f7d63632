package internal

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/derWhity/eventdesk/internal/ctxhelper"
	"github.com/derWhity/eventdesk/internal/models"
	"github.com/derWhity/eventdesk/internal/views"
)

// pages serves the HTML front-end on top of the event service
type pages struct {
	events EventService
}

func (p *pages) list(w http.ResponseWriter, r *http.Request) {
	p.renderList(w, r, http.StatusOK, views.EventsPage{Title: "Events"})
}

func (p *pages) newForm(w http.ResponseWriter, r *http.Request) {
	p.renderList(w, r, http.StatusOK, views.EventsPage{
		Title:  "Add Event",
		Adding: true,
		Form:   models.NewEvent{Status: models.StatusOnSale},
	})
}

// add creates a new event from the posted form and goes back to the list
// A rejected submission shows the dialog again, keeping what has been entered.
func (p *pages) add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		p.fail(w, r, MakeError(http.StatusBadRequest, ErrCodeIllegalForm, "Failed to parse form"))
		return
	}
	data := models.NewEvent{
		Name:     r.PostForm.Get("name"),
		Date:     r.PostForm.Get("date"),
		Time:     r.PostForm.Get("time"),
		Location: r.PostForm.Get("location"),
		Status:   models.EventStatus(r.PostForm.Get("status")),
	}
	if _, err := p.events.Add(r.Context(), data); err != nil {
		if _, ok := err.(errorCoder); !ok || errorStatus(err) != http.StatusBadRequest {
			p.fail(w, r, err)
			return
		}
		p.renderList(w, r, http.StatusBadRequest, views.EventsPage{
			Title:     "Add Event",
			Adding:    true,
			Form:      data,
			FormError: err.Error(),
		})
		return
	}
	http.Redirect(w, r, "/events", http.StatusSeeOther)
}

func (p *pages) detail(w http.ResponseWriter, r *http.Request) {
	id, err := getUint64FromPath("id", r)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	ev, err := p.events.Get(r.Context(), id)
	if err != nil {
		p.fail(w, r, err)
		return
	}
	p.render(w, r, http.StatusOK, views.EventDetail(views.EventPage{Title: ev.Name, Event: *ev}))
}

func (p *pages) renderList(w http.ResponseWriter, r *http.Request, status int, page views.EventsPage) {
	events, err := p.events.List(r.Context())
	if err != nil {
		p.fail(w, r, err)
		return
	}
	page.Events = events
	page.Statuses = models.EventStatuses
	p.render(w, r, status, views.EventsList(page))
}

func (p *pages) render(w http.ResponseWriter, r *http.Request, status int, page templ.Component) {
	if err := views.Render(r.Context(), w, status, page); err != nil {
		ctxhelper.Logger(r.Context()).WithError(err).Error("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// fail shows the error page matching the given error
func (p *pages) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusNotFound {
		p.render(w, r, status, views.NotFound(views.NotFoundPage{Title: "Not found", Message: err.Error()}))
		return
	}
	ctxhelper.Logger(r.Context()).WithError(err).Error("Request failed")
	http.Error(w, err.Error(), status)
}
