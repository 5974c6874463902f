// Package storage persists contact inquiries, proposals, and admin users.
//
// Two interchangeable implementations exist: MemoryStore for local
// development and tests, and GormStore for Postgres. Lookups that find
// nothing return (nil, nil); only infrastructure failures produce errors.
package storage

import (
	"context"

	"github.com/Arman11r/Catalog-web/internal/catalog"
	"github.com/Arman11r/Catalog-web/pkg/db/models"
	"github.com/google/uuid"
)

// defaultBasePrice falls back to the catalog base when the caller did not
// supply one, so a zero value never persists as the proposal's base.
func defaultBasePrice(basePrice int) int {
	if basePrice == 0 {
		return catalog.BasePrice
	}
	return basePrice
}

// NewContactInquiry carries the fields of a contact-form submission.
type NewContactInquiry struct {
	Name       string
	Email      string
	Phone      *string
	Restaurant *string
	Message    *string
}

// NewProposal carries a priced feature selection ready to persist.
type NewProposal struct {
	ContactInquiryID *uuid.UUID
	SelectedFeatures []string
	TotalPrice       int
	BasePrice        int
}

// NewUser carries an admin account to create. Password is plaintext here;
// the store hashes it before writing.
type NewUser struct {
	Username string
	Password string
}

// ProposalUpdate patches a stored proposal. Nil fields are left untouched.
type ProposalUpdate struct {
	PDFGenerated     *bool
	ContactInquiryID *uuid.UUID
}

// Store is the persistence surface of the marketing backend.
type Store interface {
	CreateContactInquiry(ctx context.Context, in NewContactInquiry) (*models.ContactInquiry, error)
	GetContactInquiry(ctx context.Context, id uuid.UUID) (*models.ContactInquiry, error)

	CreateProposal(ctx context.Context, in NewProposal) (*models.Proposal, error)
	GetProposal(ctx context.Context, id uuid.UUID) (*models.Proposal, error)
	UpdateProposal(ctx context.Context, id uuid.UUID, update ProposalUpdate) (*models.Proposal, error)

	CreateUser(ctx context.Context, in NewUser) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}
