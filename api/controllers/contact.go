package controllers

import (
	"context"
	"net/http"

	"github.com/Arman11r/Catalog-web/api/responses"
	"github.com/Arman11r/Catalog-web/api/validators"
	"github.com/Arman11r/Catalog-web/internal/inquiries"
	"github.com/Arman11r/Catalog-web/pkg/db/models"
	"github.com/Arman11r/Catalog-web/pkg/logger"
	"github.com/Arman11r/Catalog-web/pkg/types"
)

const contactThanksMessage = "Thank you for your inquiry! We will get back to you soon."

// ContactService records contact inquiries.
type ContactService interface {
	Create(ctx context.Context, in inquiries.CreateInput) (*models.ContactInquiry, error)
}

type contactRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      *string `json:"phone"`
	Restaurant *string `json:"restaurant"`
	Message    *string `json:"message"`
}

// Contact handles POST /api/contact.
func Contact(svc ContactService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req contactRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		inquiry, err := svc.Create(ctx, inquiries.CreateInput{
			Name:       validators.SanitizeString(req.Name, 200),
			Email:      validators.SanitizeString(req.Email, 320),
			Phone:      validators.SanitizeOptional(req.Phone, 32),
			Restaurant: validators.SanitizeOptional(req.Restaurant, 200),
			Message:    validators.SanitizeOptional(req.Message, 4000),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, types.ContactResponse{
			Success:   true,
			Message:   contactThanksMessage,
			InquiryID: inquiry.ID.String(),
		})
	}
}
