package availability

import (
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

// upsert creates the entry or, if the participant already has an entry for the date, updates its
// level. The entry is reloaded so it reflects the stored row either way.
func (r repository) upsert(uow *storage.UnitOfWork, entry *model.Availability) error {
	err := uow.Tx().
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "participant_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"level", "updated_at"}),
		}).
		Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to upsert availability: %v", err)
	}

	var stored model.Availability
	err = uow.Tx().
		Where("event_id = ? AND participant_id = ? AND date = ?", entry.EventID, entry.ParticipantID, entry.Date).
		First(&stored).Error
	if err != nil {
		return fmt.Errorf("failed to reload availability: %v", err)
	}

	*entry = stored
	return nil
}

func (r repository) find(uow *storage.UnitOfWork, eventID string, participantID uint, id uint) (*model.Availability, error) {
	var entry *model.Availability
	err := uow.Tx().
		Where("event_id = ? AND participant_id = ? AND id = ?", eventID, participantID, id).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("date %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find availability: %v", err)
	}
	return entry, nil
}

func (r repository) findAll(uow *storage.UnitOfWork, eventID string, participantID uint) ([]model.Availability, error) {
	entries := []model.Availability{}
	err := uow.Tx().
		Where("event_id = ? AND participant_id = ?", eventID, participantID).
		Order("date").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find availability: %v", err)
	}
	return entries, nil
}

func (r repository) update(uow *storage.UnitOfWork, entry *model.Availability) error {
	err := uow.Tx().
		Model(entry).
		Select("Date", "Level").
		Updates(entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("participant already has an entry for %s", entry.Date)
	}
	if err != nil {
		return fmt.Errorf("failed to update availability: %v", err)
	}
	return nil
}

// delete removes the entry with given id. Entries of other participants or events are not found.
func (r repository) delete(uow *storage.UnitOfWork, eventID string, participantID uint, id uint) error {
	result := uow.Tx().
		Where("event_id = ? AND participant_id = ?", eventID, participantID).
		Delete(&model.Availability{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete availability: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return errdef.NewNotFound("date %d not found", id)
	}
	return nil
}
