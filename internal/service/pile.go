package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"studydeck/internal/config"
	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"
	"studydeck/internal/httputil"
	"studydeck/internal/sanitize"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreatePileRequest carries a new pile. Card images arrive as URLs returned
// by the upload endpoint, never inlined.
type CreatePileRequest struct {
	UserID   string        `json:"-"`
	Name     string        `json:"name"`
	Cards    []models.Card `json:"cards"`
	FolderID *string       `json:"folder_id"`
}

// UpdatePileRequest mutates a pile. Nil fields are left alone; FolderID is
// tri-state so a pile can be moved out of its folder.
type UpdatePileRequest struct {
	UserID   string                  `json:"-"`
	Name     *string                 `json:"name"`
	Cards    *[]models.Card          `json:"cards"`
	FolderID httputil.OptionalString `json:"folder_id"`
}

// ReviewRequest reports a finished training session over a pile.
type ReviewRequest struct {
	UserID     string `json:"-"`
	KnownCount int    `json:"known_count"`
}

// ReviewResult is what the trainer shows at the end of a session.
type ReviewResult struct {
	Percentage float64           `json:"percentage"`
	CardCount  int               `json:"card_count"`
	KnownCount int               `json:"known_count"`
	DayStat    *models.Statistic `json:"day_stat"`
}

// PileService owns pile lifecycle and review sessions
type PileService struct {
	pileRepo repositories.PileRepository
	statRepo repositories.StatisticRepository
	logger   *slog.Logger
}

// NewPileService creates a new pile service
func NewPileService(
	pileRepo repositories.PileRepository,
	statRepo repositories.StatisticRepository,
	logger *slog.Logger,
) *PileService {
	return &PileService{
		pileRepo: pileRepo,
		statRepo: statRepo,
		logger:   logger,
	}
}

// CreatePile creates a pile from the creator's in-memory card list
func (s *PileService) CreatePile(ctx context.Context, req *CreatePileRequest) (*models.Pile, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxPileNameLength)),
		validation.Field(&req.Cards, validation.Length(0, config.MaxCardsPerPile)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	cards, err := cleanCards(req.Cards)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pile := &models.Pile{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		FolderID:  normalizeFolderID(req.FolderID),
		Name:      sanitize.Text(req.Name),
		Cards:     cards,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.pileRepo.Create(ctx, pile); err != nil {
		return nil, err
	}

	s.logger.Debug("pile created", "id", pile.ID, "cards", len(pile.Cards))
	return pile, nil
}

// GetPile loads a pile by id
func (s *PileService) GetPile(ctx context.Context, id, userID string) (*models.Pile, error) {
	return s.pileRepo.GetByID(ctx, id, userID)
}

// ListPiles returns the user's piles filtered by folder and name search
func (s *PileService) ListPiles(ctx context.Context, userID string, filter FolderFilter, query string) ([]models.Pile, error) {
	piles, err := s.pileRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Pile, 0, len(piles))
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, pile := range piles {
		if !filter.Matches(pile.FolderID) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(pile.Name), needle) {
			continue
		}
		filtered = append(filtered, pile)
	}

	return filtered, nil
}

// UpdatePile edits name, cards, or folder membership
func (s *PileService) UpdatePile(ctx context.Context, id string, req *UpdatePileRequest) (*models.Pile, error) {
	pile, err := s.pileRepo.GetByID(ctx, id, req.UserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := sanitize.Text(*req.Name)
		if name == "" || len(name) > config.MaxPileNameLength {
			return nil, fmt.Errorf("%w: invalid pile name", domain.ErrValidation)
		}
		pile.Name = name
	}
	if req.Cards != nil {
		if len(*req.Cards) > config.MaxCardsPerPile {
			return nil, fmt.Errorf("%w: too many cards", domain.ErrValidation)
		}
		cards, err := cleanCards(*req.Cards)
		if err != nil {
			return nil, err
		}
		pile.Cards = cards
	}
	if req.FolderID.Present {
		pile.FolderID = normalizeFolderID(req.FolderID.Value)
	}

	pile.UpdatedAt = time.Now().UTC()

	if err := s.pileRepo.Update(ctx, pile); err != nil {
		return nil, err
	}

	return pile, nil
}

// DeletePile removes a pile
func (s *PileService) DeletePile(ctx context.Context, id, userID string) error {
	return s.pileRepo.Delete(ctx, id, userID)
}

// Review folds a finished session into the day's statistic row. The session
// percentage is known/total over the whole pile; same-day sessions merge via
// the card-weighted average in Statistic.MergeSession.
func (s *PileService) Review(ctx context.Context, pileID string, req *ReviewRequest) (*ReviewResult, error) {
	pile, err := s.pileRepo.GetByID(ctx, pileID, req.UserID)
	if err != nil {
		return nil, err
	}

	total := len(pile.Cards)
	if total == 0 {
		return nil, fmt.Errorf("%w: pile has no cards", domain.ErrValidation)
	}
	if req.KnownCount < 0 || req.KnownCount > total {
		return nil, fmt.Errorf("%w: known_count out of range", domain.ErrValidation)
	}

	percentage := float64(req.KnownCount) / float64(total) * 100

	now := time.Now().UTC()
	date := now.Format(models.DateKey)

	stat, err := s.statRepo.GetByDate(ctx, req.UserID, date)
	if err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		stat = &models.Statistic{UserID: req.UserID, Date: date}
	}

	stat.MergeSession(percentage, total, now)

	if err := s.statRepo.Upsert(ctx, stat); err != nil {
		return nil, err
	}

	s.logger.Debug("review recorded",
		"pile_id", pileID,
		"session_pct", percentage,
		"day_pct", stat.Percentage,
	)

	return &ReviewResult{
		Percentage: percentage,
		CardCount:  total,
		KnownCount: req.KnownCount,
		DayStat:    stat,
	}, nil
}

// cleanCards sanitizes card text and rejects cards with an empty front
func cleanCards(cards []models.Card) ([]models.Card, error) {
	cleaned := make([]models.Card, 0, len(cards))
	for i, card := range cards {
		front := sanitize.Text(card.Front)
		back := sanitize.Text(card.Back)
		if front == "" {
			return nil, fmt.Errorf("%w: card %d has an empty front", domain.ErrValidation, i)
		}
		if len(front) > config.MaxCardSideLength || len(back) > config.MaxCardSideLength {
			return nil, fmt.Errorf("%w: card %d text too long", domain.ErrValidation, i)
		}
		cleaned = append(cleaned, models.Card{
			Front:    front,
			Back:     back,
			ImageURL: card.ImageURL,
		})
	}
	return cleaned, nil
}
