package model

import "time"

// Level is a participant's stated preference for a calendar date.
type Level uint8

const (
	LevelAvailable Level = iota
	LevelTentative
	LevelUnavailable
)

func (l Level) Valid() bool {
	return l <= LevelUnavailable
}

func (l Level) String() string {
	switch l {
	case LevelAvailable:
		return "available"
	case LevelTentative:
		return "tentative"
	case LevelUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Availability domain object defining one participant's level for one calendar date. There is at
// most one entry per event, participant and date.
// swagger:model
type Availability struct {
	ID            uint      `json:"date_id" gorm:"primaryKey"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	EventID       string    `json:"event_id" gorm:"not null;type:varchar(36);uniqueIndex:idx_availability_event_participant_date"`
	ParticipantID uint      `json:"participant_id" gorm:"not null;uniqueIndex:idx_availability_event_participant_date"`
	Date          Day       `json:"date" gorm:"not null;uniqueIndex:idx_availability_event_participant_date"`
	Level         Level     `json:"level" gorm:"not null"`
}
