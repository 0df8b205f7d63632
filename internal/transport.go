package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"

	httptransport "github.com/go-kit/kit/transport/http"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/derWhity/eventdesk/internal/models"
	"github.com/derWhity/eventdesk/internal/views"
)

const (
	apiBasePath = "/api"
)

// Defines an error that defines the HTTP status that should be returned
type httpStatuser interface {
	Status() int
}

// Defines an error that returns a machine-readable error code
type errorCoder interface {
	ErrorCode() string
}

// Defines an error that contains a data field with additional information
type dataBearer interface {
	Data() interface{}
}

type errorResponse struct {
	basicResponse
	// The error code
	Error   string      `json:"error"`
	Message string      `json:"errorMessage"`
	Details interface{} `json:"errorDetails,omitempty"`
}

// MakeHTTPHandler creates the main HTTP handler for the eventdesk service
// Static files that are not embedded (like event images) are served from uiDir.
func MakeHTTPHandler(
	es EventService,
	sServ SessionService,
	uiDir string,
	logger *logrus.Entry,
) http.Handler {
	r := mux.NewRouter()
	r.Use(makeRequestLogger(logger))

	options := []httptransport.ServerOption{
		httptransport.ServerErrorEncoder(encodeError),
	}

	// Simple alive answer for checking if HTTP can be reached
	r.Methods(http.MethodGet).Path("/alive").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		data := map[string]bool{"ok": true}
		json.NewEncoder(w).Encode(data)
	})

	r.Methods(http.MethodGet).PathPrefix("/static/").Handler(views.Static())

	// Everything below needs the caller's session
	sr := r.NewRoute().Subrouter()
	sr.Use(makeSessionMiddleware(sServ))

	// -- Event Service --------------------------------
	{
		evEp := MakeEventEndpoints(es)

		// List
		sr.Methods(http.MethodGet).Path(apiBasePath + "/events").Handler(httptransport.NewServer(
			evEp.List,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))

		// Get
		sr.Methods(http.MethodGet).Path(apiBasePath + "/events/{id:[0-9]+}").Handler(httptransport.NewServer(
			evEp.Get,
			decodeIDFromPath,
			encodeJSONResponse,
			options...,
		))

		// Add
		sr.Methods(http.MethodPost).Path(apiBasePath + "/events").Handler(httptransport.NewServer(
			evEp.Add,
			decodeNewEvent,
			encodeJSONResponse,
			options...,
		))
	}

	// -- Session Service ------------------------------
	{
		sEp := MakeSessionEndpoints(sServ)

		// End
		sr.Methods(http.MethodDelete).Path(apiBasePath + "/session").Handler(httptransport.NewServer(
			sEp.End,
			decodeNilRequest,
			encodeJSONResponse,
			options...,
		))
	}

	// -- Pages ----------------------------------------
	{
		p := &pages{events: es}

		sr.Methods(http.MethodGet).Path("/").Handler(http.RedirectHandler("/events", http.StatusSeeOther))
		sr.Methods(http.MethodGet).Path("/events").HandlerFunc(p.list)
		sr.Methods(http.MethodGet).Path("/events/new").HandlerFunc(p.newForm)
		sr.Methods(http.MethodPost).Path("/events/new").HandlerFunc(p.add)
		sr.Methods(http.MethodGet).Path("/events/{id:[0-9]+}").HandlerFunc(p.detail)
	}

	// Plain file service for everything else (e.g. event images) from the UI directory
	r.Methods(http.MethodGet).PathPrefix("/").Handler(http.FileServer(filesOnly{http.Dir(uiDir)}))

	return r
}

// filesOnly is a file system that hides its directories, so the file server never lists them
type filesOnly struct {
	http.FileSystem
}

func (fs filesOnly) Open(name string) (http.File, error) {
	f, err := fs.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

// decodeNilRequest just does nothing with the request. It is used for endpoints that don't need anything to be passed
func decodeNilRequest(_ context.Context, r *http.Request) (request interface{}, err error) {
	return nil, nil
}

// decodeNewEvent tries to load the data of a new event from the provided HTTP request's body
func decodeNewEvent(_ context.Context, r *http.Request) (interface{}, error) {
	var ev models.NewEvent
	err := json.NewDecoder(r.Body).Decode(&ev)
	if err != nil {
		return nil, MakeError(
			http.StatusBadRequest,
			ErrCodeIllegalJSON,
			fmt.Sprintf("Failed to decode JSON body: %v", err),
		)
	}
	return ev, nil
}

// getUint64FromPath is a helper function that gets an uint64 from the given path variable
func getUint64FromPath(varname string, r *http.Request) (uint64, error) {
	errmsg := fmt.Sprintf("Value for '%s' is no valid unsigned integer", varname)
	vars := mux.Vars(r)
	str, ok := vars[varname]
	if !ok {
		return 0, MakeError(http.StatusBadRequest, ErrCodeInvalidUint, errmsg)
	}
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0, MakeError(http.StatusBadRequest, ErrCodeInvalidUint, errmsg)
	}
	return val, nil
}

func decodeIDFromPath(_ context.Context, r *http.Request) (interface{}, error) {
	return getUint64FromPath("id", r)
}

// Encodes a typical JSON response
func encodeJSONResponse(ctx context.Context, w http.ResponseWriter, response interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	return json.NewEncoder(w).Encode(response)
}

// Builds an error response based on the incoming error
func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	if err == nil {
		panic("encodeError with nil error")
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(errorStatus(err))
	ret := errorResponse{
		basicResponse: basicResponse{false, nil},
		Message:       err.Error(),
		Error:         ErrCodeUnknown,
	}
	if cd, ok := err.(errorCoder); ok {
		ret.Error = cd.ErrorCode()
	}
	if db, ok := err.(dataBearer); ok {
		if data := db.Data(); data != nil {
			if err, ok := data.(error); ok {
				ret.Details = err.Error()
			} else {
				ret.Details = data
			}
		}
	}
	json.NewEncoder(w).Encode(&ret)
}

// errorStatus returns the HTTP status code that fits the given error
func errorStatus(err error) int {
	if st, ok := err.(httpStatuser); ok {
		return st.Status()
	}
	return http.StatusInternalServerError
}
