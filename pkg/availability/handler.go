package availability

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/internal/handler"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/gin-gonic/gin"
)

const (
	parameterParticipant = "participant"
	parameterDate        = "date"
)

func NewHandler(availabilityService availabilityService) Handler {
	return Handler{
		availabilityService: availabilityService,
	}
}

type Handler struct {
	availabilityService availabilityService
}

type availabilityService interface {
	Upsert(ctx context.Context, eventID string, participantID uint, date model.Day, level model.Level) (*model.Availability, error)
	Update(ctx context.Context, eventID string, participantID uint, id uint, date model.Day, level model.Level) (*model.Availability, error)
	Delete(ctx context.Context, eventID string, participantID uint, id uint) error
	FindAll(ctx context.Context, eventID string, participantID uint) ([]model.Availability, error)
	Aggregate(ctx context.Context, eventID string) ([]Bucket, error)
	AvailableOn(ctx context.Context, eventID string, date model.Day) ([]model.Participant, error)
	BestDate(ctx context.Context, eventID string) (*BestDate, error)
	Calendar(ctx context.Context, eventID string) (*Calendar, error)
}

type DateRequest struct {
	Date  *model.Day   `json:"date" binding:"required"`
	Level *model.Level `json:"level" binding:"required,oneof=0 1 2"`
}

// Create availability entry
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events/{token}/participants/{participant}/dates createDate
	//
	// Create date
	//
	// Record the participant's level for a date. An existing entry for the same date is updated.
	//
	// responses:
	//   201: Availability
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

	participantID, ok := handler.GetPathParameter(c, parameterParticipant)
	if !ok {
		return
	}

	var request DateRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	entry, err := h.availabilityService.Upsert(c.Request.Context(), scope.EventID, participantID, *request.Date, *request.Level)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusCreated, entry, "date saved")
}

// FindAll availability entries of a participant
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /events/{token}/participants/{participant}/dates findAllDates
	//
	// Find dates
	//
	// Find all entries of a participant ordered by date
	//
	// responses:
	//   200: []Availability
	//   400: Error
	//   401: Error
	//   404: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	participantID, ok := handler.GetPathParameter(c, parameterParticipant)
	if !ok {
		return
	}

	entries, err := h.availabilityService.FindAll(c.Request.Context(), scope.EventID, participantID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, entries, "")
}

// Update availability entry
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /events/{token}/participants/{participant}/dates/{date} updateDate
	//
	// Update date
	//
	// Replace date and level of an entry of the participant
	//
	// responses:
	//   200: Availability
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

	participantID, ok := handler.GetPathParameter(c, parameterParticipant)
	if !ok {
		return
	}

	id, ok := handler.GetPathParameter(c, parameterDate)
	if !ok {
		return
	}

	var request DateRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	entry, err := h.availabilityService.Update(c.Request.Context(), scope.EventID, participantID, id, *request.Date, *request.Level)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, entry, "date updated")
}

// Delete availability entry
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /events/{token}/participants/{participant}/dates/{date} deleteDate
	//
	// Delete date
	//
	// Delete an entry of the participant
	//
	// responses:
	//   200: Response
	//   400: Error
	//   401: Error
	//   404: Error
	//   409: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	participantID, ok := handler.GetPathParameter(c, parameterParticipant)
	if !ok {
		return
	}

	id, ok := handler.GetPathParameter(c, parameterDate)
	if !ok {
		return
	}

	if err := h.availabilityService.Delete(c.Request.Context(), scope.EventID, participantID, id); err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, nil, "date deleted")
}

// Availability of the event
func (h Handler) Availability(c *gin.Context) {
	// swagger:route GET /events/{token}/availability findAvailability
	//
	// Find availability
	//
	// Without a date the entries of all participants are grouped by date. Given a date the
	// participants who are not unavailable on that date are returned.
	//
	// responses:
	//   200: []Bucket
	//   400: Error
	//   401: Error
	//   404: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	if query, ok := c.GetQuery(parameterDate); ok {
		date, err := model.ParseDay(query)
		if err != nil {
			_ = c.Error(errdef.NewBadRequest("%v", err))
			return
		}

		participants, err := h.availabilityService.AvailableOn(c.Request.Context(), scope.EventID, date)
		if err != nil {
			_ = c.Error(err)
			return
		}

		handler.Respond(c, http.StatusOK, participants, "")
		return
	}

	buckets, err := h.availabilityService.Aggregate(c.Request.Context(), scope.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, buckets, "")
}

// BestDate of the event
func (h Handler) BestDate(c *gin.Context) {
	// swagger:route GET /events/{token}/best-date findBestDate
	//
	// Find best date
	//
	// Rank the dates of the event by the number of participants who are not unavailable
	//
	// responses:
	//   200: BestDate
	//   401: Error
	//   404: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	best, err := h.availabilityService.BestDate(c.Request.Context(), scope.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	handler.Respond(c, http.StatusOK, best, "")
}

// Calendar of the event
func (h Handler) Calendar(c *gin.Context) {
	// swagger:route GET /events/{token}/calendar.ics exportCalendar
	//
	// Export calendar
	//
	// Export the event on its best date as iCalendar file
	//
	// produces:
	// - text/calendar
	//
	// responses:
	//   200: Calendar
	//   401: Error
	//   404: Error
	scope, err := handler.GetScopeFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	calendar, err := h.availabilityService.Calendar(c.Request.Context(), scope.EventID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", calendar.FileName))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", calendar.Content)
}
