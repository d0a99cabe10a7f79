package participant

import (
	"context"
	"net/http"

	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/gin-gonic/gin"
)

// ParameterParticipant identifies a participant by phone on lookups and by id everywhere else.
const ParameterParticipant = "participant"

func NewHandler(participantService participantService) Handler {
	return Handler{
		participantService: participantService,
	}
}

type Handler struct {
	participantService participantService
}

type participantService interface {
	Create(ctx context.Context, eventID string, newParticipant NewParticipant) (*model.Participant, error)
	FindAll(ctx context.Context, eventID string) ([]model.Participant, error)
	FindByPhone(ctx context.Context, eventID string, phone string) (*model.Participant, error)
	Update(ctx context.Context, eventID string, id uint, update ParticipantUpdate) (*model.Participant, error)
}

type CreateParticipantRequest struct {
	Name       string     `json:"name" binding:"required,max=45"`
	Phone      string     `json:"phone" binding:"required,max=64,phone"`
	PostalCode string     `json:"postal_code" binding:"max=20"`
	IsDriver   bool       `json:"is_driver"`
	Role       model.Role `json:"role" binding:"omitempty,oneof=organizer participant"`
}

// Create participant
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events/{token}/participants createParticipant
	//
	// Create participant
	//
	// Join the event as a participant. A phone number can only join an event once.
	//
	// responses:
	//   201: Participant
	//   400: Error
	//   401: Error
	//   409: Error
	//   415: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request CreateParticipantRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	participant, err := h.participantService.Create(c.Request.Context(), scope.EventID, NewParticipant{
		Name:       request.Name,
		Phone:      request.Phone,
		PostalCode: request.PostalCode,
		IsDriver:   request.IsDriver,
		Role:       request.Role,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusCreated, participant, "participant created")
}

// FindAll participants
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /events/{token}/participants findAllParticipants
	//
	// Find all participants
	//
	// Find all participants of the event without their availability
	//
	// responses:
	//   200: []Participant
	//   401: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	participants, err := h.participantService.FindAll(c.Request.Context(), scope.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, participants, "")
}

// FindByPhone participant
func (h Handler) FindByPhone(c *gin.Context) {
	// swagger:route GET /events/{token}/participants/{participant} findParticipantByPhone
	//
	// Find participant
	//
	// Find a participant of the event by phone including its availability
	//
	// responses:
	//   200: Participant
	//   401: Error
	//   404: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	participant, err := h.participantService.FindByPhone(c.Request.Context(), scope.EventID, c.Param(ParameterParticipant))
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, participant, "")
}

type UpdateParticipantRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=45"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=20"`
	IsDriver   *bool   `json:"is_driver"`
}

// Update participant
func (h Handler) Update(c *gin.Context) {
	// swagger:route PATCH /events/{token}/participants/{participant} updateParticipant
	//
	// Update participant
	//
	// Update the name, postal code and/or driver flag of a participant
	//
	// responses:
	//   200: Participant
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

	id, ok := handler.GetPathParameter(c, ParameterParticipant)
	if !ok {
		return
	}

	var request UpdateParticipantRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	participant, err := h.participantService.Update(c.Request.Context(), scope.EventID, id, ParticipantUpdate{
		Name:       request.Name,
		PostalCode: request.PostalCode,
		IsDriver:   request.IsDriver,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, participant, "participant updated")
}
