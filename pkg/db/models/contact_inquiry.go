package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactInquiry is a contact-form submission. Created once, never mutated.
type ContactInquiry struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"column:name;not null" json:"name"`
	Email      string    `gorm:"column:email;not null" json:"email"`
	Phone      *string   `gorm:"column:phone" json:"phone,omitempty"`
	Restaurant *string   `gorm:"column:restaurant" json:"restaurant,omitempty"`
	Message    *string   `gorm:"column:message" json:"message,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (ContactInquiry) TableName() string { return "contact_inquiries" }
