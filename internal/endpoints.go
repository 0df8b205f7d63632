package internal

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/derWhity/eventdesk/internal/ctxhelper"
	"github.com/derWhity/eventdesk/internal/models"
)

// EventEndpoints is a collection of endpoints for working with the event service
type EventEndpoints struct {
	List endpoint.Endpoint
	Get  endpoint.Endpoint
	Add  endpoint.Endpoint
}

// SessionEndpoints is a collection of endpoints for working with the session service
type SessionEndpoints struct {
	End endpoint.Endpoint
}

// The base for all responses which always contains an "ok" property to show if the call was successful and a
// data element containing the result of the request
type basicResponse struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data,omitempty"`
}

type listResponse struct {
	Rows uint        `json:"rows"`
	List interface{} `json:"list"`
}

// -- Events -----------------------------------------------------------------------------------------------------------

// MakeEventEndpoints builds the endpoints needed to communicate with the Event Service
func MakeEventEndpoints(s EventService) EventEndpoints {
	return EventEndpoints{
		List: EnsureSession(makeListEventsEndpoint(s)),
		Get:  EnsureSession(makeGetEventEndpoint(s)),
		Add:  EnsureSession(makeAddEventEndpoint(s)),
	}
}

func makeListEventsEndpoint(s EventService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		events, err := s.List(ctx)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, listResponse{uint(len(events)), events}}, nil
	}
}

func makeGetEventEndpoint(s EventService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		id, ok := request.(uint64)
		if !ok {
			return nil, fmt.Errorf("illegal ID parameter")
		}
		ev, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, ev}, nil
	}
}

func makeAddEventEndpoint(s EventService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		data, ok := request.(models.NewEvent)
		if !ok {
			return nil, fmt.Errorf("illegal event parameter")
		}
		ev, err := s.Add(ctx, data)
		if err != nil {
			return nil, err
		}
		return basicResponse{true, ev}, nil
	}
}

// -- Sessions ---------------------------------------------------------------------------------------------------------

// MakeSessionEndpoints builds the endpoints needed to communicate with the Session Service
func MakeSessionEndpoints(s SessionService) SessionEndpoints {
	return SessionEndpoints{
		End: EnsureSession(makeEndSessionEndpoint(s)),
	}
}

func makeEndSessionEndpoint(s SessionService) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		sess := ctxhelper.Session(ctx)
		if err := s.End(ctx, sess.ID); err != nil {
			return nil, err
		}
		return basicResponse{true, nil}, nil
	}
}
