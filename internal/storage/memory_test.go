package storage

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/Arman11r/Catalog-web/internal/catalog"
	"github.com/Arman11r/Catalog-web/pkg/config"
	"github.com/google/uuid"
)

func testPasswordConfig() config.PasswordConfig {
	// Minimal argon cost so hashing does not dominate test time.
	return config.PasswordConfig{
		ArgonMemoryKB:    8 * 1024,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestMemoryStoreContactInquiryRoundTrip(t *testing.T) {
	store := NewMemoryStore(testPasswordConfig())
	ctx := context.Background()

	phone := "+91 99999 11111"
	created, err := store.CreateContactInquiry(ctx, NewContactInquiry{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: &phone,
	})
	if err != nil {
		t.Fatalf("CreateContactInquiry: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}

	got, err := store.GetContactInquiry(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetContactInquiry: %v", err)
	}
	if got == nil || got.Email != "asha@example.com" || *got.Phone != phone {
		t.Fatalf("unexpected inquiry: %+v", got)
	}

	// Mutating the returned copy must not touch stored state.
	*got.Phone = "changed"
	again, _ := store.GetContactInquiry(ctx, created.ID)
	if *again.Phone != phone {
		t.Fatalf("stored phone mutated through returned pointer: %s", *again.Phone)
	}
}

func TestMemoryStoreGetContactInquiryMissing(t *testing.T) {
	store := NewMemoryStore(testPasswordConfig())

	got, err := store.GetContactInquiry(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected nil error for missing inquiry, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil inquiry, got %+v", got)
	}
}

func TestMemoryStoreProposalLifecycle(t *testing.T) {
	store := NewMemoryStore(testPasswordConfig())
	ctx := context.Background()

	features := []string{"live-status", "live-status", "seo"}
	created, err := store.CreateProposal(ctx, NewProposal{
		SelectedFeatures: features,
		TotalPrice:       46500,
		BasePrice:        40000,
	})
	if err != nil {
		t.Fatalf("CreateProposal: %v", err)
	}
	if created.PDFGenerated {
		t.Fatal("new proposal must start with PDFGenerated=false")
	}
	if len(created.SelectedFeatures) != 3 {
		t.Fatalf("duplicates must be stored verbatim, got %v", created.SelectedFeatures)
	}

	// Stored slice must be a copy of the input.
	features[0] = "tampered"
	got, _ := store.GetProposal(ctx, created.ID)
	if got.SelectedFeatures[0] != "live-status" {
		t.Fatalf("input slice aliased into the store: %v", got.SelectedFeatures)
	}

	yes := true
	updated, err := store.UpdateProposal(ctx, created.ID, ProposalUpdate{PDFGenerated: &yes})
	if err != nil {
		t.Fatalf("UpdateProposal: %v", err)
	}
	if updated == nil || !updated.PDFGenerated {
		t.Fatalf("expected PDFGenerated=true, got %+v", updated)
	}
	if updated.TotalPrice != 46500 {
		t.Fatalf("update touched unrelated field: %+v", updated)
	}
}

func TestMemoryStoreUpdateMissingProposal(t *testing.T) {
	store := NewMemoryStore(testPasswordConfig())

	yes := true
	got, err := store.UpdateProposal(context.Background(), uuid.New(), ProposalUpdate{PDFGenerated: &yes})
	if err != nil {
		t.Fatalf("expected nil error for missing proposal, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil proposal, got %+v", got)
	}
}

func TestMemoryStoreCreateProposalNilFeatures(t *testing.T) {
	store := NewMemoryStore(testPasswordConfig())

	created, err := store.CreateProposal(context.Background(), NewProposal{TotalPrice: 40000, BasePrice: 40000})
	if err != nil {
		t.Fatalf("CreateProposal: %v", err)
	}
	if created.SelectedFeatures == nil || len(created.SelectedFeatures) != 0 {
		t.Fatalf("expected empty non-nil feature list, got %v", created.SelectedFeatures)
	}
}

func TestMemoryStoreCreateProposalDefaultsBasePrice(t *testing.T) {
	store := NewMemoryStore(testPasswordConfig())

	created, err := store.CreateProposal(context.Background(), NewProposal{
		SelectedFeatures: []string{"live-status"},
		TotalPrice:       43000,
	})
	if err != nil {
		t.Fatalf("CreateProposal: %v", err)
	}
	if created.BasePrice != catalog.BasePrice {
		t.Fatalf("unset base price must default to %d, got %d", catalog.BasePrice, created.BasePrice)
	}

	got, _ := store.GetProposal(context.Background(), created.ID)
	if got.BasePrice != catalog.BasePrice {
		t.Fatalf("stored base price = %d, want %d", got.BasePrice, catalog.BasePrice)
	}
}

func TestMemoryStoreUsers(t *testing.T) {
	store := NewMemoryStore(testPasswordConfig())
	ctx := context.Background()

	user, err := store.CreateUser(ctx, NewUser{Username: "admin", Password: "s3cret"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Password == "s3cret" || !strings.HasPrefix(user.Password, "$argon2id$") {
		t.Fatalf("password stored unhashed: %q", user.Password)
	}

	got, err := store.GetUserByUsername(ctx, "admin")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Fatalf("unexpected user: %+v", got)
	}

	if _, err := store.CreateUser(ctx, NewUser{Username: "admin", Password: "other"}); err == nil {
		t.Fatal("expected duplicate username to fail")
	}

	missing, err := store.GetUserByUsername(ctx, "nobody")
	if err != nil || missing != nil {
		t.Fatalf("expected (nil, nil) for missing user, got (%+v, %v)", missing, err)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore(testPasswordConfig())
	ctx := context.Background()

	created, err := store.CreateProposal(ctx, NewProposal{TotalPrice: 40000, BasePrice: 40000})
	if err != nil {
		t.Fatalf("CreateProposal: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			yes := true
			_, _ = store.UpdateProposal(ctx, created.ID, ProposalUpdate{PDFGenerated: &yes})
			_, _ = store.GetProposal(ctx, created.ID)
			_, _ = store.CreateProposal(ctx, NewProposal{TotalPrice: 41500, BasePrice: 40000})
		}()
	}
	wg.Wait()

	got, err := store.GetProposal(ctx, created.ID)
	if err != nil || got == nil || !got.PDFGenerated {
		t.Fatalf("unexpected proposal after concurrent updates: %+v (%v)", got, err)
	}
}
