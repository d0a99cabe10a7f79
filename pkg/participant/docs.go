package participant

// swagger:parameters createParticipant
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// Create participant request body parameter
	// in: body
	// required: true
	Body CreateParticipantRequest
}

// swagger:parameters findAllParticipants
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`
}

// swagger:parameters findParticipantByPhone
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// Phone number of the participant
	// in: path
	// required: true
	Participant string `json:"participant"`
}

// swagger:parameters updateParticipant
type _ struct {
	// in: path
	// required: true
	Token string `json:"token"`

	// Id of the participant
	// in: path
	// required: true
	Participant uint `json:"participant"`

	// Update participant request body parameter
	// in: body
	// required: true
	Body UpdateParticipantRequest
}
