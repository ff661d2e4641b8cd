package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"studydeck/internal/catalog"
	"studydeck/internal/config"
	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"
	"studydeck/internal/sanitize"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateFolderRequest carries a new folder. Color names the palette entry;
// the stored folder keeps the resolved hex values so renaming palette
// entries later never recolors existing folders.
type CreateFolderRequest struct {
	UserID string            `json:"-"`
	Kind   models.FolderKind `json:"kind"`
	Name   string            `json:"name"`
	Color  string            `json:"color"`
}

// UpdateFolderRequest renames or recolors a folder. Kind never changes.
type UpdateFolderRequest struct {
	UserID string  `json:"-"`
	Name   *string `json:"name"`
	Color  *string `json:"color"`
}

// FolderService owns folders of both kinds and the delete cascade
type FolderService struct {
	folderRepo repositories.FolderRepository
	docRepo    repositories.DocumentRepository
	pileRepo   repositories.PileRepository
	txManager  repositories.TransactionManager
	catalog    *catalog.Registry
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo repositories.FolderRepository,
	docRepo repositories.DocumentRepository,
	pileRepo repositories.PileRepository,
	txManager repositories.TransactionManager,
	registry *catalog.Registry,
	logger *slog.Logger,
) *FolderService {
	return &FolderService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		pileRepo:   pileRepo,
		txManager:  txManager,
		catalog:    registry,
		logger:     logger,
	}
}

// CreateFolder creates a folder of one kind
func (s *FolderService) CreateFolder(ctx context.Context, req *CreateFolderRequest) (*models.Folder, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxFolderNameLength)),
		validation.Field(&req.Color, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown folder kind %q", domain.ErrValidation, req.Kind)
	}

	color, ok := s.catalog.Color(req.Color)
	if !ok {
		return nil, fmt.Errorf("%w: unknown color %q", domain.ErrValidation, req.Color)
	}

	now := time.Now().UTC()
	folder := &models.Folder{
		ID:         uuid.NewString(),
		UserID:     req.UserID,
		Kind:       req.Kind,
		Name:       sanitize.Text(req.Name),
		ColorLight: color.Light,
		ColorDark:  color.Dark,
		TextColor:  color.Text,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// GetFolder loads a folder by id
func (s *FolderService) GetFolder(ctx context.Context, id, userID string) (*models.Folder, error) {
	return s.folderRepo.GetByID(ctx, id, userID)
}

// ListFolders returns the user's folders of one kind
func (s *FolderService) ListFolders(ctx context.Context, userID string, kind models.FolderKind) ([]models.Folder, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown folder kind %q", domain.ErrValidation, kind)
	}
	return s.folderRepo.ListByUser(ctx, userID, kind)
}

// UpdateFolder renames and/or recolors a folder
func (s *FolderService) UpdateFolder(ctx context.Context, id string, req *UpdateFolderRequest) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := sanitize.Text(*req.Name)
		if name == "" || len(name) > config.MaxFolderNameLength {
			return nil, fmt.Errorf("%w: invalid folder name", domain.ErrValidation)
		}
		folder.Name = name
	}
	if req.Color != nil {
		color, ok := s.catalog.Color(*req.Color)
		if !ok {
			return nil, fmt.Errorf("%w: unknown color %q", domain.ErrValidation, *req.Color)
		}
		folder.ColorLight = color.Light
		folder.ColorDark = color.Dark
		folder.TextColor = color.Text
	}

	folder.UpdatedAt = time.Now().UTC()

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}

	return folder, nil
}

// DeleteFolder removes a folder and every member of its kind, atomically.
// Members of the other kind can never reference it, so only one cascade runs.
func (s *FolderService) DeleteFolder(ctx context.Context, id, userID string) error {
	folder, err := s.folderRepo.GetByID(ctx, id, userID)
	if err != nil {
		return err
	}

	return s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		switch folder.Kind {
		case models.FolderKindPile:
			if err := s.pileRepo.DeleteByFolder(txCtx, id, userID); err != nil {
				return err
			}
		case models.FolderKindDocument:
			if err := s.docRepo.DeleteByFolder(txCtx, id, userID); err != nil {
				return err
			}
		}
		if err := s.folderRepo.Delete(txCtx, id, userID); err != nil {
			return err
		}

		s.logger.Info("folder deleted with members", "id", id, "kind", folder.Kind)
		return nil
	})
}
