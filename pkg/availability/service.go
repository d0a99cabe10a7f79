package availability

import (
	"context"
	"log/slog"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/internal/metric"
	"github.com/dhis2-sre/pick-a-date/pkg/event"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewService(logger *slog.Logger, transactor transactor, repository availabilityRepository, eventService eventService, participantService participantService) *service {
	return &service{
		logger:             logger,
		transactor:         transactor,
		repository:         repository,
		eventService:       eventService,
		participantService: participantService,
	}
}

type transactor interface {
	Do(ctx context.Context, fn func(uow *storage.UnitOfWork) error) error
}

type availabilityRepository interface {
	upsert(uow *storage.UnitOfWork, entry *model.Availability) error
	find(uow *storage.UnitOfWork, eventID string, participantID uint, id uint) (*model.Availability, error)
	findAll(uow *storage.UnitOfWork, eventID string, participantID uint) ([]model.Availability, error)
	update(uow *storage.UnitOfWork, entry *model.Availability) error
	delete(uow *storage.UnitOfWork, eventID string, participantID uint, id uint) error
}

type eventService interface {
	Find(ctx context.Context, id string) (*event.Details, error)
	FindWritable(uow *storage.UnitOfWork, id string) (*model.Event, error)
}

type participantService interface {
	Find(uow *storage.UnitOfWork, eventID string, id uint) (*model.Participant, error)
}

type service struct {
	logger             *slog.Logger
	transactor         transactor
	repository         availabilityRepository
	eventService       eventService
	participantService participantService
}

// Upsert records the participant's level for date. An existing entry for the same date is updated
// in place.
func (s service) Upsert(ctx context.Context, eventID string, participantID uint, date model.Day, level model.Level) (*model.Availability, error) {
	if !level.Valid() {
		return nil, errdef.NewBadRequest("level must be one of 0, 1 or 2 but was %d", level)
	}

	entry := &model.Availability{
		EventID:       eventID,
		ParticipantID: participantID,
		Date:          date,
		Level:         level,
	}
	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		if err := s.checkWritable(uow, eventID, participantID, date); err != nil {
			return err
		}

		return s.repository.upsert(uow, entry)
	})
	if err != nil {
		return nil, err
	}

	metric.AvailabilityWritten(metric.OperationUpsert)
	return entry, nil
}

// Update replaces date and level of the participant's entry with given id.
func (s service) Update(ctx context.Context, eventID string, participantID uint, id uint, date model.Day, level model.Level) (*model.Availability, error) {
	if !level.Valid() {
		return nil, errdef.NewBadRequest("level must be one of 0, 1 or 2 but was %d", level)
	}

	var entry *model.Availability
	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		if err := s.checkWritable(uow, eventID, participantID, date); err != nil {
			return err
		}

		var err error
		entry, err = s.repository.find(uow, eventID, participantID, id)
		if err != nil {
			return err
		}

		entry.Date = date
		entry.Level = level
		return s.repository.update(uow, entry)
	})
	if err != nil {
		return nil, err
	}

	metric.AvailabilityWritten(metric.OperationUpdate)
	return entry, nil
}

// Delete removes the participant's entry with given id.
func (s service) Delete(ctx context.Context, eventID string, participantID uint, id uint) error {
	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		if _, err := s.eventService.FindWritable(uow, eventID); err != nil {
			return err
		}

		return s.repository.delete(uow, eventID, participantID, id)
	})
	if err != nil {
		return err
	}

	metric.AvailabilityWritten(metric.OperationDelete)
	return nil
}

// FindAll returns the entries of the participant ordered by date.
func (s service) FindAll(ctx context.Context, eventID string, participantID uint) ([]model.Availability, error) {
	var entries []model.Availability
	err := s.transactor.Do(ctx, func(uow *storage.UnitOfWork) error {
		if _, err := s.participantService.Find(uow, eventID, participantID); err != nil {
			return err
		}

		var err error
		entries, err = s.repository.findAll(uow, eventID, participantID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Aggregate returns the entries of the event grouped by date.
func (s service) Aggregate(ctx context.Context, eventID string) ([]Bucket, error) {
	details, err := s.eventService.Find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return Aggregate(details.Dates, details.Participants), nil
}

// AvailableOn returns the participants of the event who are not unavailable on date.
func (s service) AvailableOn(ctx context.Context, eventID string, date model.Day) ([]model.Participant, error) {
	details, err := s.eventService.Find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return AvailableOn(details.Dates, details.Participants, date), nil
}

// BestDate is the best date of an event next to the ranking of all dates it was chosen from. Best
// is nil if no availability was recorded yet.
type BestDate struct {
	Best    *Ranking  `json:"best"`
	Ranking []Ranking `json:"ranking"`
}

func (s service) BestDate(ctx context.Context, eventID string) (*BestDate, error) {
	details, err := s.eventService.Find(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return bestDate(details), nil
}

func bestDate(details *event.Details) *BestDate {
	rankings := Rank(Aggregate(details.Dates, details.Participants))
	best := &BestDate{Ranking: rankings}
	if len(rankings) > 0 {
		best.Best = &rankings[0]
	}
	return best
}

// checkWritable ensures the event accepts writes for date and that the participant belongs to it.
func (s service) checkWritable(uow *storage.UnitOfWork, eventID string, participantID uint, date model.Day) error {
	writable, err := s.eventService.FindWritable(uow, eventID)
	if err != nil {
		return err
	}

	if !writable.Accepts(date) {
		return errdef.NewBadRequest("date %s is outside of the event window %s to %s", date, writable.MinDate, writable.MaxDate)
	}

	_, err = s.participantService.Find(uow, eventID, participantID)
	return err
}
