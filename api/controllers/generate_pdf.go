package controllers

import (
	"context"
	"net/http"

	"github.com/Arman11r/Catalog-web/api/responses"
	"github.com/Arman11r/Catalog-web/api/validators"
	"github.com/Arman11r/Catalog-web/internal/proposals"
	pkgerrors "github.com/Arman11r/Catalog-web/pkg/errors"
	"github.com/Arman11r/Catalog-web/pkg/logger"
	"github.com/google/uuid"
)

// PDFService turns a stored proposal into quote PDF bytes.
type PDFService interface {
	GeneratePDF(ctx context.Context, id uuid.UUID, selectedFeatures []string) ([]byte, error)
}

type generatePDFRequest struct {
	ProposalID string `json:"proposalId" validate:"required"`
	// Optional override; nil renders the proposal's stored selection.
	SelectedFeatures []string `json:"selectedFeatures"`
}

// GeneratePDF handles POST /api/generate-pdf.
func GeneratePDF(svc PDFService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req generatePDFRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		// A syntactically invalid id can never name a stored proposal.
		id, err := uuid.Parse(req.ProposalID)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "Proposal not found"))
			return
		}

		pdfBytes, err := svc.GeneratePDF(ctx, id, req.SelectedFeatures)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WritePDF(w, proposals.PDFFilename, pdfBytes)
	}
}
