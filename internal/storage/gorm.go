package storage

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/Arman11r/Catalog-web/pkg/config"
	"github.com/Arman11r/Catalog-web/pkg/db/models"
	"github.com/Arman11r/Catalog-web/pkg/errors"
	"github.com/Arman11r/Catalog-web/pkg/security"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore persists to a relational database through GORM.
type GormStore struct {
	db          *gorm.DB
	passwordCfg config.PasswordConfig
}

// NewGormStore constructs a store bound to the provided GORM connection.
func NewGormStore(db *gorm.DB, passwordCfg config.PasswordConfig) *GormStore {
	return &GormStore{db: db, passwordCfg: passwordCfg}
}

func isRecordNotFound(err error) bool {
	return stderrors.Is(err, gorm.ErrRecordNotFound)
}

func (s *GormStore) CreateContactInquiry(ctx context.Context, in NewContactInquiry) (*models.ContactInquiry, error) {
	inquiry := models.ContactInquiry{
		ID:         uuid.New(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Restaurant: in.Restaurant,
		Message:    in.Message,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&inquiry).Error; err != nil {
		return nil, errors.Wrap(errors.CodeStorage, err, "inserting contact inquiry")
	}
	return &inquiry, nil
}

func (s *GormStore) GetContactInquiry(ctx context.Context, id uuid.UUID) (*models.ContactInquiry, error) {
	var inquiry models.ContactInquiry
	err := s.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error
	switch {
	case err == nil:
		return &inquiry, nil
	case isRecordNotFound(err):
		return nil, nil
	default:
		return nil, errors.Wrap(errors.CodeStorage, err, "loading contact inquiry")
	}
}

func (s *GormStore) CreateProposal(ctx context.Context, in NewProposal) (*models.Proposal, error) {
	features := in.SelectedFeatures
	if features == nil {
		features = []string{}
	}

	proposal := models.Proposal{
		ID:               uuid.New(),
		ContactInquiryID: in.ContactInquiryID,
		SelectedFeatures: features,
		TotalPrice:       in.TotalPrice,
		BasePrice:        defaultBasePrice(in.BasePrice),
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&proposal).Error; err != nil {
		return nil, errors.Wrap(errors.CodeStorage, err, "inserting proposal")
	}
	return &proposal, nil
}

func (s *GormStore) GetProposal(ctx context.Context, id uuid.UUID) (*models.Proposal, error) {
	var proposal models.Proposal
	err := s.db.WithContext(ctx).First(&proposal, "id = ?", id).Error
	switch {
	case err == nil:
		return &proposal, nil
	case isRecordNotFound(err):
		return nil, nil
	default:
		return nil, errors.Wrap(errors.CodeStorage, err, "loading proposal")
	}
}

func (s *GormStore) UpdateProposal(ctx context.Context, id uuid.UUID, update ProposalUpdate) (*models.Proposal, error) {
	columns := map[string]any{}
	if update.PDFGenerated != nil {
		columns["pdf_generated"] = *update.PDFGenerated
	}
	if update.ContactInquiryID != nil {
		columns["contact_inquiry_id"] = *update.ContactInquiryID
	}

	if len(columns) > 0 {
		res := s.db.WithContext(ctx).
			Model(&models.Proposal{}).
			Where("id = ?", id).
			UpdateColumns(columns)
		if res.Error != nil {
			return nil, errors.Wrap(errors.CodeStorage, res.Error, "updating proposal")
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}

	return s.GetProposal(ctx, id)
}

func (s *GormStore) CreateUser(ctx context.Context, in NewUser) (*models.User, error) {
	hash, err := security.HashPassword(in.Password, s.passwordCfg)
	if err != nil {
		return nil, errors.Wrap(errors.CodeStorage, err, "hashing user password")
	}

	user := models.User{
		ID:       uuid.New(),
		Username: in.Username,
		Password: hash,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, errors.Wrap(errors.CodeStorage, err, "inserting user")
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "username = ?", username).Error
	switch {
	case err == nil:
		return &user, nil
	case isRecordNotFound(err):
		return nil, nil
	default:
		return nil, errors.Wrap(errors.CodeStorage, err, "loading user")
	}
}
