package model

import "time"

type Role string

const (
	RoleOrganizer   Role = "organizer"
	RoleParticipant Role = "participant"
)

const DefaultIconPath = "default.png"

// Participant domain object defining a person invited to an event. A phone number may only join an
// event once.
// swagger:model
type Participant struct {
	ID         uint      `json:"participant_id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	EventID    string    `json:"event_id" gorm:"not null;type:varchar(36);uniqueIndex:idx_participant_event_phone"`
	AccountID  *uint     `json:"account_id,omitempty"`
	Account    *Account  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Name       string    `json:"name" gorm:"not null;type:varchar(45)"`
	Phone      string    `json:"phone" gorm:"not null;type:varchar(64);uniqueIndex:idx_participant_event_phone"`
	PostalCode string    `json:"postal_code" gorm:"type:varchar(20)"`
	Role       Role      `json:"role" gorm:"not null;type:varchar(20);default:participant"`
	IsDriver   bool      `json:"is_driver"`
	IconPath   string    `json:"icon_path" gorm:"type:varchar(45)"`
	Color      string    `json:"color" gorm:"type:varchar(7)"`

	Dates []Availability `json:"dates,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
