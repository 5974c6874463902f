package storage

import (
	"context"
	"sync"
	"time"

	"github.com/Arman11r/Catalog-web/pkg/config"
	"github.com/Arman11r/Catalog-web/pkg/db/models"
	"github.com/Arman11r/Catalog-web/pkg/errors"
	"github.com/Arman11r/Catalog-web/pkg/security"
	"github.com/google/uuid"
)

// MemoryStore keeps everything in process memory. Safe for concurrent use;
// all reads and writes work on copies so callers can never mutate stored
// state through returned pointers.
type MemoryStore struct {
	mu          sync.RWMutex
	inquiries   map[uuid.UUID]models.ContactInquiry
	proposals   map[uuid.UUID]models.Proposal
	users       map[uuid.UUID]models.User
	passwordCfg config.PasswordConfig

	now func() time.Time
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore(passwordCfg config.PasswordConfig) *MemoryStore {
	return &MemoryStore{
		inquiries:   make(map[uuid.UUID]models.ContactInquiry),
		proposals:   make(map[uuid.UUID]models.Proposal),
		users:       make(map[uuid.UUID]models.User),
		passwordCfg: passwordCfg,
		now:         time.Now,
	}
}

func (s *MemoryStore) CreateContactInquiry(_ context.Context, in NewContactInquiry) (*models.ContactInquiry, error) {
	inquiry := models.ContactInquiry{
		ID:         uuid.New(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      copyStr(in.Phone),
		Restaurant: copyStr(in.Restaurant),
		Message:    copyStr(in.Message),
		CreatedAt:  s.now().UTC(),
	}

	s.mu.Lock()
	s.inquiries[inquiry.ID] = inquiry
	s.mu.Unlock()

	out := inquiry
	return &out, nil
}

func (s *MemoryStore) GetContactInquiry(_ context.Context, id uuid.UUID) (*models.ContactInquiry, error) {
	s.mu.RLock()
	inquiry, ok := s.inquiries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	out := inquiry
	out.Phone = copyStr(inquiry.Phone)
	out.Restaurant = copyStr(inquiry.Restaurant)
	out.Message = copyStr(inquiry.Message)
	return &out, nil
}

func (s *MemoryStore) CreateProposal(_ context.Context, in NewProposal) (*models.Proposal, error) {
	proposal := models.Proposal{
		ID:               uuid.New(),
		ContactInquiryID: copyUUID(in.ContactInquiryID),
		SelectedFeatures: copyStrs(in.SelectedFeatures),
		TotalPrice:       in.TotalPrice,
		BasePrice:        defaultBasePrice(in.BasePrice),
		CreatedAt:        s.now().UTC(),
	}

	s.mu.Lock()
	s.proposals[proposal.ID] = proposal
	s.mu.Unlock()

	return proposalCopy(proposal), nil
}

func (s *MemoryStore) GetProposal(_ context.Context, id uuid.UUID) (*models.Proposal, error) {
	s.mu.RLock()
	proposal, ok := s.proposals[id]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return proposalCopy(proposal), nil
}

func (s *MemoryStore) UpdateProposal(_ context.Context, id uuid.UUID, update ProposalUpdate) (*models.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	proposal, ok := s.proposals[id]
	if !ok {
		return nil, nil
	}

	if update.PDFGenerated != nil {
		proposal.PDFGenerated = *update.PDFGenerated
	}
	if update.ContactInquiryID != nil {
		proposal.ContactInquiryID = copyUUID(update.ContactInquiryID)
	}

	s.proposals[id] = proposal
	return proposalCopy(proposal), nil
}

func (s *MemoryStore) CreateUser(_ context.Context, in NewUser) (*models.User, error) {
	hash, err := security.HashPassword(in.Password, s.passwordCfg)
	if err != nil {
		return nil, errors.Wrap(errors.CodeStorage, err, "hashing user password")
	}

	user := models.User{
		ID:       uuid.New(),
		Username: in.Username,
		Password: hash,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == in.Username {
			return nil, errors.New(errors.CodeStorage, "username already taken")
		}
	}
	s.users[user.ID] = user

	out := user
	return &out, nil
}

func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			out := user
			return &out, nil
		}
	}
	return nil, nil
}

func proposalCopy(p models.Proposal) *models.Proposal {
	out := p
	out.ContactInquiryID = copyUUID(p.ContactInquiryID)
	out.SelectedFeatures = copyStrs(p.SelectedFeatures)
	return &out
}

func copyStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyStrs(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
