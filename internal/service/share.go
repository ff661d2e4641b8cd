package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ShareRequest addresses a detached copy to a recipient.
type ShareRequest struct {
	UserID    string `json:"-"`
	UserEmail string `json:"-"`
	Email     string `json:"email"`
}

// Validate checks the recipient address
func (r *ShareRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// ClaimResult reports what a claim produced.
type ClaimResult struct {
	Kind       models.ShareKind `json:"kind"`
	PileID     string           `json:"pile_id,omitempty"`
	DocumentID string           `json:"document_id,omitempty"`
}

// ShareService owns the global share table: creating detached copies,
// listing a recipient's inbox, and claiming copies into owned collections.
type ShareService struct {
	shareRepo repositories.ShareRepository
	pileRepo  repositories.PileRepository
	docRepo   repositories.DocumentRepository
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewShareService creates a new share service
func NewShareService(
	shareRepo repositories.ShareRepository,
	pileRepo repositories.PileRepository,
	docRepo repositories.DocumentRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) *ShareService {
	return &ShareService{
		shareRepo: shareRepo,
		pileRepo:  pileRepo,
		docRepo:   docRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// SharePile copies a pile's current cards into the share table. The copy is
// frozen at share time; later edits to the pile do not reach the recipient.
func (s *ShareService) SharePile(ctx context.Context, pileID string, req *ShareRequest) (*models.Share, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	pile, err := s.pileRepo.GetByID(ctx, pileID, req.UserID)
	if err != nil {
		return nil, err
	}

	share := &models.Share{
		ID:             uuid.NewString(),
		RecipientEmail: req.Email,
		SharerID:       req.UserID,
		SharerEmail:    req.UserEmail,
		Kind:           models.ShareKindPile,
		Name:           pile.Name,
		Cards:          pile.Cards,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, err
	}

	s.logger.Info("pile shared", "pile_id", pileID, "recipient", req.Email)
	return share, nil
}

// ShareDocument copies a document's current content into the share table
func (s *ShareService) ShareDocument(ctx context.Context, documentID string, req *ShareRequest) (*models.Share, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	doc, err := s.docRepo.GetByID(ctx, documentID, req.UserID)
	if err != nil {
		return nil, err
	}

	share := &models.Share{
		ID:             uuid.NewString(),
		RecipientEmail: req.Email,
		SharerID:       req.UserID,
		SharerEmail:    req.UserEmail,
		Kind:           models.ShareKindDocument,
		Name:           doc.Title,
		Document:       &models.SharedDocument{Title: doc.Title, Content: doc.Content},
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, err
	}

	s.logger.Info("document shared", "document_id", documentID, "recipient", req.Email)
	return share, nil
}

// ListShares returns the shares addressed to an email
func (s *ShareService) ListShares(ctx context.Context, email string) ([]models.Share, error) {
	return s.shareRepo.ListByRecipient(ctx, email)
}

// Claim moves a share into the caller's own collection and removes it from
// the share table, atomically. Only the addressed recipient may claim.
func (s *ShareService) Claim(ctx context.Context, shareID, userID, userEmail string) (*ClaimResult, error) {
	share, err := s.shareRepo.GetByID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if !share.AddressedTo(userEmail) {
		return nil, fmt.Errorf("share %s: %w", shareID, domain.ErrForbidden)
	}

	result := &ClaimResult{Kind: share.Kind}
	now := time.Now().UTC()

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		switch share.Kind {
		case models.ShareKindPile:
			pile := &models.Pile{
				ID:        uuid.NewString(),
				UserID:    userID,
				Name:      share.Name,
				Cards:     share.Cards,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.pileRepo.Create(txCtx, pile); err != nil {
				return err
			}
			result.PileID = pile.ID

		case models.ShareKindDocument:
			if share.Document == nil {
				return fmt.Errorf("%w: share %s has no document payload", domain.ErrValidation, shareID)
			}
			doc := &models.Document{
				ID:        uuid.NewString(),
				UserID:    userID,
				Title:     share.Document.Title,
				Content:   share.Document.Content,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.docRepo.Create(txCtx, doc); err != nil {
				return err
			}
			result.DocumentID = doc.ID

		default:
			return fmt.Errorf("%w: unknown share kind %q", domain.ErrValidation, share.Kind)
		}

		return s.shareRepo.Delete(txCtx, shareID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("share claimed", "share_id", shareID, "kind", share.Kind)
	return result, nil
}

// Decline removes a share without claiming it. Only the addressed recipient
// may decline.
func (s *ShareService) Decline(ctx context.Context, shareID, userEmail string) error {
	share, err := s.shareRepo.GetByID(ctx, shareID)
	if err != nil {
		return err
	}
	if !share.AddressedTo(userEmail) {
		return fmt.Errorf("share %s: %w", shareID, domain.ErrForbidden)
	}

	return s.shareRepo.Delete(ctx, shareID)
}
