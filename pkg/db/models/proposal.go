package models

import (
	"time"

	"github.com/google/uuid"
)

// Proposal pairs a raw feature selection with its computed total price.
//
// SelectedFeatures is stored exactly as submitted, duplicates included;
// pricing de-duplicates before charging. Everything except PDFGenerated is
// fixed at creation.
type Proposal struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ContactInquiryID *uuid.UUID `gorm:"column:contact_inquiry_id;type:uuid" json:"contactInquiryId,omitempty"`
	SelectedFeatures []string   `gorm:"column:selected_features;type:jsonb;serializer:json;not null" json:"selectedFeatures"`
	TotalPrice       int        `gorm:"column:total_price;not null" json:"totalPrice"`
	BasePrice        int        `gorm:"column:base_price;not null" json:"basePrice"`
	CreatedAt        time.Time  `gorm:"column:created_at;not null" json:"createdAt"`
	PDFGenerated     bool       `gorm:"column:pdf_generated;not null" json:"pdfGenerated"`
}

func (Proposal) TableName() string { return "proposals" }
