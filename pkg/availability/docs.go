package availability

// swagger:parameters createDate
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// Id of the participant
	// in: path
	// required: true
	Participant uint `json:"participant"`

	// Date request body parameter
	// in: body
	// required: true
	Body DateRequest
}

// swagger:parameters findAllDates
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// Id of the participant
	// in: path
	// required: true
	Participant uint `json:"participant"`
}

// swagger:parameters updateDate
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// in: path
	// required: true
	Participant uint `json:"participant"`

	// Id of the entry
	// in: path
	// required: true
	Date uint `json:"date"`

	// Date request body parameter
	// in: body
	// required: true
	Body DateRequest
}

// swagger:parameters deleteDate
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// in: path
	// required: true
	Participant uint `json:"participant"`

	// Id of the entry
	// in: path
	// required: true
	Date uint `json:"date"`
}

// swagger:parameters findAvailability
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// Only return participants who are not unavailable on this date (YYYY-MM-DD)
	// in: query
	// required: false
	Date string `json:"date"`
}

// swagger:parameters findBestDate exportCalendar
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`
}

// swagger:response Calendar
type _ struct {
	// in: body
	_ []byte
}
