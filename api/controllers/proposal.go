package controllers

import (
	"context"
	"net/http"

	"github.com/Arman11r/Catalog-web/api/responses"
	"github.com/Arman11r/Catalog-web/api/validators"
	"github.com/Arman11r/Catalog-web/pkg/db/models"
	"github.com/Arman11r/Catalog-web/pkg/logger"
	"github.com/Arman11r/Catalog-web/pkg/types"
)

// ProposalService prices and persists feature selections.
type ProposalService interface {
	Create(ctx context.Context, selectedFeatures []string) (*models.Proposal, error)
}

type proposalRequest struct {
	// Pointer so an omitted field is distinguishable from an empty
	// selection: absent is a validation error, [] prices the base package.
	SelectedFeatures *[]string `json:"selectedFeatures" validate:"required"`
}

// Proposal handles POST /api/proposal.
func Proposal(svc ProposalService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req proposalRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		proposal, err := svc.Create(ctx, *req.SelectedFeatures)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, types.ProposalResponse{
			Success:          true,
			ProposalID:       proposal.ID.String(),
			TotalPrice:       proposal.TotalPrice,
			SelectedFeatures: proposal.SelectedFeatures,
		})
	}
}
