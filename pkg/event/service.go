package event

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/internal/metric"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, transactor transactor, repository eventRepository, tokenService tokenService) *service {
	return &service{
		logger:       logger,
		transactor:   transactor,
		repository:   repository,
		tokenService: tokenService,
	}
}

type transactor interface {
	Do(ctx context.Context, fn func(uow *storage.UnitOfWork) error) error
}

type eventRepository interface {
	create(uow *storage.UnitOfWork, event *model.Event) error
	find(ctx context.Context, id string) (*model.Event, error)
	findForWrite(uow *storage.UnitOfWork, id string) (*model.Event, error)
	findForUpdate(uow *storage.UnitOfWork, id string) (*model.Event, error)
	update(uow *storage.UnitOfWork, event *model.Event) error
}

type tokenService interface {
	Mint(uow *storage.UnitOfWork, eventID string, accountID *uint) (*model.AccessToken, error)
}

type service struct {
	logger       *slog.Logger
	transactor   transactor
	repository   eventRepository
	tokenService tokenService
}

// Created is the result of creating an event. The token is the only handle the organizer receives.
type Created struct {
	*model.Event
	Addresses []model.EventAddress `json:"addresses"`
	Token     string               `json:"token"`
}

// Details is the event as seen by everyone holding its access token.
type Details struct {
	*model.Event
	ParticipantCount int                  `json:"participant_count"`
	AddressCount     int                  `json:"address_count"`
	Participants     []model.Participant  `json:"participants"`
	Addresses        []model.EventAddress `json:"addresses"`
	Dates            []model.Availability `json:"dates"`
}

type NewEvent struct {
	Name        string
	Description string
	MinDate     model.Day
	MaxDate     model.Day
	Addresses   []model.EventAddress
}

// Create persists the event, its addresses and its access token as a single unit.
func (s service) Create(ctx context.Context, newEvent NewEvent) (*Created, error) {
	name := strings.TrimSpace(newEvent.Name)
	if name == "" {
		return nil, errdef.NewBadRequest("event name must not be empty")
	}

	if newEvent.MinDate.After(newEvent.MaxDate) {
		return nil, errdef.NewBadRequest("min_date %s must not be after max_date %s", newEvent.MinDate, newEvent.MaxDate)
	}

	event := &model.Event{
		Name:        name,
		Description: newEvent.Description,
		MinDate:     newEvent.MinDate,
		MaxDate:     newEvent.MaxDate,
		Active:      true,
		Addresses:   newEvent.Addresses,
	}

	var token *model.AccessToken
	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		if err := s.repository.create(uow, event); err != nil {
			return err
		}

		var err error
		token, err = s.tokenService.Mint(uow, event.ID, nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	metric.EventCreated()
	s.logger.InfoContext(ctx, "Event created", "eventId", event.ID, "addresses", len(event.Addresses))

	addresses := event.Addresses
	if addresses == nil {
		addresses = []model.EventAddress{}
	}
	return &Created{Event: event, Addresses: addresses, Token: token.Token}, nil
}

// Find returns the details of the event with given id.
func (s service) Find(ctx context.Context, id string) (*Details, error) {
	event, err := s.repository.find(ctx, id)
	if err != nil {
		return nil, err
	}

	details := &Details{
		Event:            event,
		ParticipantCount: len(event.Participants),
		AddressCount:     len(event.Addresses),
		Participants:     event.Participants,
		Addresses:        event.Addresses,
		Dates:            event.Dates,
	}
	if details.Participants == nil {
		details.Participants = []model.Participant{}
	}
	if details.Addresses == nil {
		details.Addresses = []model.EventAddress{}
	}
	if details.Dates == nil {
		details.Dates = []model.Availability{}
	}

	return details, nil
}

// FindWritable returns the event with given id as part of uow if it still accepts writes. The event
// row stays share locked until uow ends so it can't be deactivated midway.
func (s service) FindWritable(uow *storage.UnitOfWork, id string) (*model.Event, error) {
	event, err := s.repository.findForWrite(uow, id)
	if err != nil {
		return nil, err
	}

	if !event.Active {
		return nil, errdef.NewConflict("event is not active")
	}

	return event, nil
}

type EventUpdate struct {
	Name        *string
	Description *string
}

// Update changes the name and/or description of an active event.
func (s service) Update(ctx context.Context, id string, update EventUpdate) (*model.Event, error) {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return nil, errdef.NewBadRequest("event name must not be empty")
	}

	var event *model.Event
	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		var err error
		event, err = s.repository.findForUpdate(uow, id)
		if err != nil {
			return err
		}

		if !event.Active {
			return errdef.NewConflict("event is not active")
		}

		if update.Name != nil {
			event.Name = strings.TrimSpace(*update.Name)
		}
		if update.Description != nil {
			event.Description = *update.Description
		}

		return s.repository.update(uow, event)
	})
	if err != nil {
		return nil, err
	}

	return event, nil
}

// Deactivate marks the event inactive. Deactivating an inactive event has no effect.
func (s service) Deactivate(ctx context.Context, id string) (*model.Event, error) {
	var event *model.Event
	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		var err error
		event, err = s.repository.findForUpdate(uow, id)
		if err != nil {
			return err
		}

		if !event.Active {
			return nil
		}

		event.Active = false
		return s.repository.update(uow, event)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Event deactivated", "eventId", event.ID)
	return event, nil
}
