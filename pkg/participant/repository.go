package participant

import (
	"context"
	"errors"
	"fmt"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db: db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(uow *storage.UnitOfWork, participant *model.Participant) error {
	err := uow.Tx().Create(participant).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("phone %q already joined the event", participant.Phone)
	}
	if err != nil {
		return fmt.Errorf("failed to create participant: %v", err)
	}
	return nil
}

func (r repository) findAll(ctx context.Context, eventID string) ([]model.Participant, error) {
	participants := []model.Participant{}
	err := r.db.
		WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("id").
		Find(&participants).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find participants: %v", err)
	}
	return participants, nil
}

func (r repository) findByPhone(ctx context.Context, eventID string, phone string) (*model.Participant, error) {
	var participant *model.Participant
	err := r.db.
		WithContext(ctx).
		Preload("Dates", func(db *gorm.DB) *gorm.DB {
			return db.Order("availabilities.date")
		}).
		Where("event_id = ? AND phone = ?", eventID, phone).
		First(&participant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("participant with phone %q not found", phone)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find participant: %v", err)
	}
	return participant, nil
}

func (r repository) find(uow *storage.UnitOfWork, eventID string, id uint) (*model.Participant, error) {
	var participant *model.Participant
	err := uow.Tx().
		Where("event_id = ? AND id = ?", eventID, id).
		First(&participant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("participant %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find participant: %v", err)
	}
	return participant, nil
}

func (r repository) update(uow *storage.UnitOfWork, participant *model.Participant) error {
	err := uow.Tx().
		Model(participant).
		Select("Name", "PostalCode", "IsDriver").
		Updates(participant).Error
	if err != nil {
		return fmt.Errorf("failed to update participant: %v", err)
	}
	return nil
}
