package participant

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/internal/metric"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, transactor transactor, repository participantRepository, eventService eventService) *service {
	return &service{
		logger:       logger,
		transactor:   transactor,
		repository:   repository,
		eventService: eventService,
		color:        randomColor,
	}
}

type transactor interface {
	Do(ctx context.Context, fn func(uow *storage.UnitOfWork) error) error
}

type participantRepository interface {
	create(uow *storage.UnitOfWork, participant *model.Participant) error
	findAll(ctx context.Context, eventID string) ([]model.Participant, error)
	findByPhone(ctx context.Context, eventID string, phone string) (*model.Participant, error)
	find(uow *storage.UnitOfWork, eventID string, id uint) (*model.Participant, error)
	update(uow *storage.UnitOfWork, participant *model.Participant) error
}

type eventService interface {
	FindWritable(uow *storage.UnitOfWork, id string) (*model.Event, error)
}

type service struct {
	logger       *slog.Logger
	transactor   transactor
	repository   participantRepository
	eventService eventService
	color        func() string
}

// randomColor returns a random display color formatted as #rrggbb.
func randomColor() string {
	return fmt.Sprintf("#%06x", rand.IntN(0x1000000))
}

type NewParticipant struct {
	Name       string
	Phone      string
	PostalCode string
	IsDriver   bool
	Role       model.Role
}

// Create adds a participant to an active event. A phone number can join an event only once.
func (s service) Create(ctx context.Context, eventID string, newParticipant NewParticipant) (*model.Participant, error) {
	name := strings.TrimSpace(newParticipant.Name)
	if name == "" {
		return nil, errdef.NewBadRequest("participant name must not be empty")
	}

	role := newParticipant.Role
	if role == "" {
		role = model.RoleParticipant
	}
	if role != model.RoleParticipant && role != model.RoleOrganizer {
		return nil, errdef.NewBadRequest("unknown role %q", role)
	}

	participant := &model.Participant{
		EventID:    eventID,
		Name:       name,
		Phone:      strings.TrimSpace(newParticipant.Phone),
		PostalCode: newParticipant.PostalCode,
		Role:       role,
		IsDriver:   newParticipant.IsDriver,
		IconPath:   model.DefaultIconPath,
		Color:      s.color(),
	}

	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		if _, err := s.eventService.FindWritable(uow, eventID); err != nil {
			return err
		}

		return s.repository.create(uow, participant)
	})
	if err != nil {
		return nil, err
	}

	metric.ParticipantJoined()
	s.logger.InfoContext(ctx, "Participant joined", "participantId", participant.ID)
	return participant, nil
}

// FindAll returns the participants of the event without their availability.
func (s service) FindAll(ctx context.Context, eventID string) ([]model.Participant, error) {
	return s.repository.findAll(ctx, eventID)
}

// FindByPhone returns the participant of the event with given phone including its availability.
func (s service) FindByPhone(ctx context.Context, eventID string, phone string) (*model.Participant, error) {
	participant, err := s.repository.findByPhone(ctx, eventID, strings.TrimSpace(phone))
	if err != nil {
		return nil, err
	}

	if participant.Dates == nil {
		participant.Dates = []model.Availability{}
	}
	return participant, nil
}

// Find returns the participant with given id as part of uow. Participants of other events are not
// found.
func (s service) Find(uow *storage.UnitOfWork, eventID string, id uint) (*model.Participant, error) {
	return s.repository.find(uow, eventID, id)
}

type ParticipantUpdate struct {
	Name       *string
	PostalCode *string
	IsDriver   *bool
}

// Update changes the given attributes of a participant of an active event.
func (s service) Update(ctx context.Context, eventID string, id uint, update ParticipantUpdate) (*model.Participant, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, errdef.NewBadRequest("participant name must not be empty")
	}

	var participant *model.Participant
	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		if _, err := s.eventService.FindWritable(uow, eventID); err != nil {
			return err
		}

		var err error
		participant, err = s.repository.find(uow, eventID, id)
		if err != nil {
			return err
		}

		if update.Name != nil {
			participant.Name = strings.TrimSpace(*update.Name)
		}
		if update.PostalCode != nil {
			participant.PostalCode = *update.PostalCode
		}
		if update.IsDriver != nil {
			participant.IsDriver = *update.IsDriver
		}

		return s.repository.update(uow, participant)
	})
	if err != nil {
		return nil, err
	}

	return participant, nil
}
