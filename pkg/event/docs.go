package event

// swagger:parameters createEvent
type _ struct {
	// Create event request body parameter
	// in: body
	// required: true
	Body CreateEventRequest
}

// swagger:parameters findEvent deactivateEvent
type _ struct {
	// Access token of the event
	// in: path
	// required: true
	Token string `json:"token"`
}

// swagger:parameters updateEvent
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// Update event request body parameter
	// in: body
	// required: true
	Body UpdateEventRequest
}

// swagger:response CreatedEvent
type _ struct {
	// in: body
	_ Created
}

// swagger:response EventDetails
type _ struct {
	// in: body
	_ Details
}
