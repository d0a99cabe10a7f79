package model

import "time"

// Account is an optional registered identity a participant may link to.
type Account struct {
	ID        uint      `json:"account_id" gorm:"primarykey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Email     string    `json:"email" gorm:"index;unique"`
	Password  string    `json:"-"`
}
