package event

import (
	"context"
	"net/http"

	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/gin-gonic/gin"
)

func NewHandler(eventService eventService) Handler {
	return Handler{
		eventService: eventService,
	}
}

type Handler struct {
	eventService eventService
}

type eventService interface {
	Create(ctx context.Context, newEvent NewEvent) (*Created, error)
	Find(ctx context.Context, id string) (*Details, error)
	Update(ctx context.Context, id string, update EventUpdate) (*model.Event, error)
	Deactivate(ctx context.Context, id string) (*model.Event, error)
}

type AddressRequest struct {
	Street     string   `json:"street" binding:"max=255"`
	City       string   `json:"city" binding:"max=100"`
	State      string   `json:"state" binding:"max=100"`
	PostalCode string   `json:"postal_code" binding:"max=20"`
	Country    string   `json:"country" binding:"max=100"`
	Latitude   *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"lon" binding:"omitempty,min=-180,max=180"`
}

type CreateEventRequest struct {
	Name        string           `json:"event_name" binding:"required,max=45"`
	Description string           `json:"description" binding:"max=255"`
	MinDate     *model.Day       `json:"min_date" binding:"required"`
	MaxDate     *model.Day       `json:"max_date" binding:"required"`
	Addresses   []AddressRequest `json:"addresses" binding:"omitempty,dive"`
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events createEvent
	//
	// Create event
	//
	// Create an event with its addresses. The returned token grants access to the event.
	//
	// responses:
	//   201: CreatedEvent
	//   400: Error
	//   415: Error
	var request CreateEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	addresses := make([]model.EventAddress, len(request.Addresses))
	for i, address := range request.Addresses {
		addresses[i] = model.EventAddress{
			Street:     address.Street,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
			Latitude:   address.Latitude,
			Longitude:  address.Longitude,
		}
	}

	created, err := h.eventService.Create(c.Request.Context(), NewEvent{
		Name:        request.Name,
		Description: request.Description,
		MinDate:     *request.MinDate,
		MaxDate:     *request.MaxDate,
		Addresses:   addresses,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusCreated, created, "event created")
}

// Find event
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /events/{token} findEvent
	//
	// Find event
	//
	// Find the event the token grants access to including its participants, addresses and availability
	//
	// responses:
	//   200: EventDetails
	//   401: Error
	//   404: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	details, err := h.eventService.Find(c.Request.Context(), scope.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, details, "")
}

type UpdateEventRequest struct {
	Name        *string `json:"event_name" binding:"omitempty,max=45"`
	Description *string `json:"description" binding:"omitempty,max=255"`
}

// Update event
func (h Handler) Update(c *gin.Context) {
	// swagger:route PATCH /events/{token} updateEvent
	//
	// Update event
	//
	// Update the name and/or description of an active event
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   404: Error
	//   409: Error
	//   415: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request UpdateEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), scope.EventID, EventUpdate{
		Name:        request.Name,
		Description: request.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, event, "event updated")
}

// Deactivate event
func (h Handler) Deactivate(c *gin.Context) {
	// swagger:route POST /events/{token}/deactivate deactivateEvent
	//
	// Deactivate event
	//
	// Deactivate an event. Inactive events can still be read but reject any further changes.
	//
	// responses:
	//   200: Event
	//   401: Error
	//   404: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Deactivate(c.Request.Context(), scope.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, event, "event deactivated")
}
