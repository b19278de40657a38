package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact represents a customer contact request. Each request gets a unique
// ticket number used in the notification sent back to the customer.
type Contact struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Ticket     string    `json:"ticket" gorm:"uniqueIndex;type:varchar(50)"`
	FirstName  string    `json:"first_name" gorm:"type:varchar(100)" validate:"required,max=100"`
	LastName   string    `json:"last_name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Phone      string    `json:"phone" gorm:"type:varchar(20)" validate:"required,max=20"`
	Email      string    `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Message    string    `json:"message" gorm:"type:text" validate:"required"`
	ReceivedAt time.Time `json:"received_at"`
	gorm.Model
}
