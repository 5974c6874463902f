// Package proposals orchestrates the quote workflow: pricing and persisting
// a feature selection, and turning a stored proposal into a downloadable
// PDF quote.
package proposals

import (
	"context"
	"time"

	"github.com/Arman11r/Catalog-web/internal/catalog"
	"github.com/Arman11r/Catalog-web/internal/pricing"
	"github.com/Arman11r/Catalog-web/internal/quote"
	"github.com/Arman11r/Catalog-web/internal/quote/pdf"
	"github.com/Arman11r/Catalog-web/internal/storage"
	"github.com/Arman11r/Catalog-web/pkg/db/models"
	"github.com/Arman11r/Catalog-web/pkg/errors"
	"github.com/Arman11r/Catalog-web/pkg/logger"
	"github.com/Arman11r/Catalog-web/pkg/metrics"
	"github.com/google/uuid"
)

// PDFFilename is the fixed download name for generated quotes.
const PDFFilename = "CafeCanvas_Feature_Selection.pdf"

// Service implements the quote workflow.
type Service struct {
	store      storage.Store
	rasterizer pdf.Rasterizer
	logg       *logger.Logger
	metrics    *metrics.QuoteMetrics

	now func() time.Time
}

// NewService constructs the proposal workflow service. metrics may be nil
// when no registry is wired (tests).
func NewService(store storage.Store, rasterizer pdf.Rasterizer, logg *logger.Logger, m *metrics.QuoteMetrics) *Service {
	return &Service{
		store:      store,
		rasterizer: rasterizer,
		logg:       logg,
		metrics:    m,
		now:        time.Now,
	}
}

// Create prices the selection and persists a proposal. The selection is
// stored exactly as submitted; pricing charges each feature once and
// ignores ids outside the catalog.
func (s *Service) Create(ctx context.Context, selectedFeatures []string) (*models.Proposal, error) {
	q := pricing.QuoteFor(selectedFeatures)

	proposal, err := s.store.CreateProposal(ctx, storage.NewProposal{
		SelectedFeatures: selectedFeatures,
		TotalPrice:       q.TotalPrice,
		BasePrice:        q.BasePrice,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncProposalCreated()

	ctx = s.logg.WithProposalID(ctx, proposal.ID.String())
	ctx = s.logg.WithField(ctx, "total_price", proposal.TotalPrice)
	s.logg.Info(ctx, "proposal created")
	return proposal, nil
}

// Get loads a proposal, translating absence into NOT_FOUND.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Proposal, error) {
	proposal, err := s.store.GetProposal(ctx, id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, errors.New(errors.CodeNotFound, "Proposal not found")
	}
	return proposal, nil
}

// GeneratePDF renders the quote for a stored proposal and returns the PDF
// bytes. When selectedFeatures is nil the proposal's stored selection is
// used; a non-nil override renders those features instead without touching
// the stored record. The pdf_generated flag is updated best-effort: an
// update failure is logged and the PDF is still returned.
func (s *Service) GeneratePDF(ctx context.Context, id uuid.UUID, selectedFeatures []string) ([]byte, error) {
	proposal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithProposalID(ctx, proposal.ID.String())

	features := selectedFeatures
	if features == nil {
		features = proposal.SelectedFeatures
	}

	doc := quote.Build(proposal, catalog.ResolveNames(features), s.now())
	html, err := quote.HTML(doc)
	if err != nil {
		return nil, errors.Wrap(errors.CodeRender, err, "rendering quote document")
	}

	start := s.now()
	pdfBytes, err := s.rasterizer.Render(ctx, html)
	s.metrics.ObserveRender("quote", time.Since(start), err)
	if err != nil {
		return nil, err
	}

	yes := true
	if _, err := s.store.UpdateProposal(ctx, id, storage.ProposalUpdate{PDFGenerated: &yes}); err != nil {
		s.logg.Error(ctx, "marking proposal pdf_generated failed", err)
	}

	s.logg.Info(ctx, "proposal pdf generated")
	return pdfBytes, nil
}
