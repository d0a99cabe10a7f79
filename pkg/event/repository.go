package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

// create persists the event together with its addresses.
func (r repository) create(uow *storage.UnitOfWork, event *model.Event) error {
	err := uow.Tx().Create(event).Error
	if err != nil {
		return fmt.Errorf("failed to create event: %v", err)
	}
	return nil
}

func (r repository) find(ctx context.Context, id string) (*model.Event, error) {
	var event *model.Event
	err := r.db.
		WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("participants.id")
		}).
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_addresses.id")
		}).
		Preload("Dates", func(db *gorm.DB) *gorm.DB {
			return db.Order("availabilities.date, availabilities.participant_id")
		}).
		Where("id = ?", id).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event: %v", err)
	}

	return event, nil
}

// findForWrite finds the event and takes a shared lock on its row for the lifetime of uow. Writes
// guarded by the lock can't interleave with a concurrent deactivation.
func (r repository) findForWrite(uow *storage.UnitOfWork, id string) (*model.Event, error) {
	var event *model.Event
	err := uow.Tx().
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id = ?", id).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event: %v", err)
	}

	return event, nil
}

// findForUpdate finds the event and takes an exclusive lock on its row for the lifetime of uow.
func (r repository) findForUpdate(uow *storage.UnitOfWork, id string) (*model.Event, error) {
	var event *model.Event
	err := uow.Tx().
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event: %v", err)
	}

	return event, nil
}

func (r repository) update(uow *storage.UnitOfWork, event *model.Event) error {
	err := uow.Tx().
		Model(event).
		Select("Name", "Description", "Active").
		Updates(event).Error
	if err != nil {
		return fmt.Errorf("failed to update event: %v", err)
	}
	return nil
}
