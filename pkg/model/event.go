package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event domain object defining a schedulable occasion and its candidate date window
// swagger:model
type Event struct {
	ID          string    `json:"event_id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"event_name" gorm:"not null;type:varchar(45)"`
	Description string    `json:"description" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"date_created"`
	UpdatedAt   time.Time `json:"date_updated"`
	MinDate     Day       `json:"min_date" gorm:"not null"`
	MaxDate     Day       `json:"max_date" gorm:"not null"`
	Active      bool      `json:"is_active" gorm:"not null;default:true"`

	Participants []Participant  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Dates        []Availability `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Addresses    []EventAddress `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Tokens       []AccessToken  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// Accepts reports whether day is a valid target for availability entries of the event.
func (e *Event) Accepts(day Day) bool {
	return day.Within(e.MinDate, e.MaxDate)
}

// EventAddress domain object defining a postal address of an event
// swagger:model
type EventAddress struct {
	ID         uint      `json:"address_id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"-"`
	EventID    string    `json:"event_id" gorm:"not null;index;type:varchar(36)"`
	Street     string    `json:"street" gorm:"type:varchar(255)"`
	City       string    `json:"city" gorm:"type:varchar(100)"`
	State      string    `json:"state" gorm:"type:varchar(100)"`
	PostalCode string    `json:"postal_code" gorm:"type:varchar(20)"`
	Country    string    `json:"country" gorm:"type:varchar(100)"`
	Latitude   *float64  `json:"lat"`
	Longitude  *float64  `json:"lon"`
}
