package service

import (
	"context"
	"errors"
	"testing"

	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
)

func newShareService() (*ShareService, *fakePileRepo, *fakeDocumentRepo, *fakeShareRepo) {
	shareRepo := newFakeShareRepo()
	pileRepo := newFakePileRepo()
	docRepo := newFakeDocumentRepo()
	svc := NewShareService(shareRepo, pileRepo, docRepo, &fakeTxManager{}, testLogger())
	return svc, pileRepo, docRepo, shareRepo
}

func TestSharePileFreezesCards(t *testing.T) {
	ctx := context.Background()
	svc, pileRepo, _, _ := newShareService()

	pile := &models.Pile{
		ID:     "pile-1",
		UserID: "user-1",
		Name:   "Vocab",
		Cards:  []models.Card{{Front: "chat", Back: "cat"}},
	}
	if err := pileRepo.Create(ctx, pile); err != nil {
		t.Fatalf("Create pile: %v", err)
	}

	share, err := svc.SharePile(ctx, "pile-1", &ShareRequest{
		UserID:    "user-1",
		UserEmail: "sharer@example.com",
		Email:     "friend@example.com",
	})
	if err != nil {
		t.Fatalf("SharePile: %v", err)
	}
	if share.Kind != models.ShareKindPile {
		t.Errorf("Kind = %s", share.Kind)
	}
	if len(share.Cards) != 1 || share.Cards[0].Front != "chat" {
		t.Errorf("Cards not copied: %+v", share.Cards)
	}

	// Editing the pile afterwards must not change the share
	pile.Cards = []models.Card{{Front: "chien", Back: "dog"}}
	if err := pileRepo.Update(ctx, pile); err != nil {
		t.Fatalf("Update pile: %v", err)
	}
	shares, err := svc.ListShares(ctx, "friend@example.com")
	if err != nil {
		t.Fatalf("ListShares: %v", err)
	}
	if len(shares) != 1 || shares[0].Cards[0].Front != "chat" {
		t.Error("share should be frozen at share time")
	}
}

func TestShareRequestValidation(t *testing.T) {
	ctx := context.Background()
	svc, pileRepo, _, _ := newShareService()

	if err := pileRepo.Create(ctx, &models.Pile{ID: "pile-1", UserID: "user-1", Name: "Vocab"}); err != nil {
		t.Fatalf("Create pile: %v", err)
	}

	tests := []struct {
		name  string
		email string
	}{
		{"empty email", ""},
		{"not an email", "not-an-address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SharePile(ctx, "pile-1", &ShareRequest{UserID: "user-1", Email: tt.email})
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestClaimPileShare(t *testing.T) {
	ctx := context.Background()
	svc, pileRepo, _, _ := newShareService()

	if err := pileRepo.Create(ctx, &models.Pile{
		ID:     "pile-1",
		UserID: "user-1",
		Name:   "Vocab",
		Cards:  []models.Card{{Front: "chat", Back: "cat"}},
	}); err != nil {
		t.Fatalf("Create pile: %v", err)
	}

	share, err := svc.SharePile(ctx, "pile-1", &ShareRequest{
		UserID: "user-1", UserEmail: "sharer@example.com", Email: "friend@example.com",
	})
	if err != nil {
		t.Fatalf("SharePile: %v", err)
	}

	// Only the addressed recipient can claim
	if _, err := svc.Claim(ctx, share.ID, "user-3", "stranger@example.com"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger claim: err = %v, want ErrForbidden", err)
	}

	result, err := svc.Claim(ctx, share.ID, "user-2", "Friend@Example.com")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if result.Kind != models.ShareKindPile || result.PileID == "" {
		t.Errorf("result = %+v", result)
	}

	// The claimed pile belongs to the recipient
	claimed, err := pileRepo.GetByID(ctx, result.PileID, "user-2")
	if err != nil {
		t.Fatalf("claimed pile: %v", err)
	}
	if claimed.Name != "Vocab" || len(claimed.Cards) != 1 {
		t.Errorf("claimed pile = %+v", claimed)
	}

	// The share is gone
	shares, err := svc.ListShares(ctx, "friend@example.com")
	if err != nil {
		t.Fatalf("ListShares: %v", err)
	}
	if len(shares) != 0 {
		t.Errorf("share should be removed after claim, got %d", len(shares))
	}
}

func TestClaimDocumentShare(t *testing.T) {
	ctx := context.Background()
	svc, _, docRepo, _ := newShareService()

	if err := docRepo.Create(ctx, &models.Document{
		ID:      "doc-1",
		UserID:  "user-1",
		Title:   "Notes",
		Content: "<p>body</p>",
	}); err != nil {
		t.Fatalf("Create document: %v", err)
	}

	share, err := svc.ShareDocument(ctx, "doc-1", &ShareRequest{
		UserID: "user-1", UserEmail: "sharer@example.com", Email: "friend@example.com",
	})
	if err != nil {
		t.Fatalf("ShareDocument: %v", err)
	}

	result, err := svc.Claim(ctx, share.ID, "user-2", "friend@example.com")
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}

	claimed, err := docRepo.GetByID(ctx, result.DocumentID, "user-2")
	if err != nil {
		t.Fatalf("claimed document: %v", err)
	}
	if claimed.Title != "Notes" || claimed.Content != "<p>body</p>" {
		t.Errorf("claimed document = %+v", claimed)
	}
}

func TestDeclineShare(t *testing.T) {
	ctx := context.Background()
	svc, pileRepo, _, _ := newShareService()

	if err := pileRepo.Create(ctx, &models.Pile{ID: "pile-1", UserID: "user-1", Name: "Vocab"}); err != nil {
		t.Fatalf("Create pile: %v", err)
	}
	share, err := svc.SharePile(ctx, "pile-1", &ShareRequest{
		UserID: "user-1", UserEmail: "sharer@example.com", Email: "friend@example.com",
	})
	if err != nil {
		t.Fatalf("SharePile: %v", err)
	}

	if err := svc.Decline(ctx, share.ID, "stranger@example.com"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("stranger decline: err = %v, want ErrForbidden", err)
	}
	if err := svc.Decline(ctx, share.ID, "friend@example.com"); err != nil {
		t.Fatalf("Decline: %v", err)
	}

	shares, err := svc.ListShares(ctx, "friend@example.com")
	if err != nil {
		t.Fatalf("ListShares: %v", err)
	}
	if len(shares) != 0 {
		t.Errorf("share should be removed after decline, got %d", len(shares))
	}
}
