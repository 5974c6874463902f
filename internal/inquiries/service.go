// Package inquiries handles contact-form submissions.
package inquiries

import (
	"context"

	"github.com/Arman11r/Catalog-web/internal/storage"
	"github.com/Arman11r/Catalog-web/pkg/db/models"
	"github.com/Arman11r/Catalog-web/pkg/logger"
)

// Service records contact inquiries.
type Service struct {
	store storage.Store
	logg  *logger.Logger
}

// NewService constructs an inquiries service.
func NewService(store storage.Store, logg *logger.Logger) *Service {
	return &Service{store: store, logg: logg}
}

// CreateInput is a validated contact-form submission.
type CreateInput struct {
	Name       string
	Email      string
	Phone      *string
	Restaurant *string
	Message    *string
}

// Create persists the inquiry and returns the stored record.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.ContactInquiry, error) {
	inquiry, err := s.store.CreateContactInquiry(ctx, storage.NewContactInquiry{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Restaurant: in.Restaurant,
		Message:    in.Message,
	})
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithInquiryID(ctx, inquiry.ID.String())
	s.logg.Info(ctx, "contact inquiry recorded")
	return inquiry, nil
}
