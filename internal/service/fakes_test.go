package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"studydeck/internal/domain"
	"studydeck/internal/domain/models"
	"studydeck/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeDocumentRepo keeps documents in a map keyed by id
type fakeDocumentRepo struct {
	docs map[string]*models.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]*models.Document)}
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, id, userID string) (*models.Document, error) {
	doc, ok := r.docs[id]
	if !ok || doc.UserID != userID {
		return nil, fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	cp := *doc
	return &cp, nil
}

func (r *fakeDocumentRepo) ListByUser(ctx context.Context, userID string) ([]models.Document, error) {
	var out []models.Document
	for _, doc := range r.docs {
		if doc.UserID == userID {
			out = append(out, *doc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDocumentRepo) Update(ctx context.Context, doc *models.Document) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return fmt.Errorf("document %s: %w", doc.ID, domain.ErrNotFound)
	}
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) Delete(ctx context.Context, id, userID string) error {
	doc, ok := r.docs[id]
	if !ok || doc.UserID != userID {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	delete(r.docs, id)
	return nil
}

func (r *fakeDocumentRepo) DeleteByFolder(ctx context.Context, folderID, userID string) error {
	for id, doc := range r.docs {
		if doc.UserID == userID && doc.FolderID != nil && *doc.FolderID == folderID {
			delete(r.docs, id)
		}
	}
	return nil
}

// fakeDraftRepo keys drafts by user+document
type fakeDraftRepo struct {
	drafts map[string]*models.Draft
}

func newFakeDraftRepo() *fakeDraftRepo {
	return &fakeDraftRepo{drafts: make(map[string]*models.Draft)}
}

func draftKey(userID, documentID string) string {
	return userID + "/" + documentID
}

func (r *fakeDraftRepo) Upsert(ctx context.Context, draft *models.Draft) error {
	cp := *draft
	r.drafts[draftKey(draft.UserID, draft.DocumentID)] = &cp
	return nil
}

func (r *fakeDraftRepo) Get(ctx context.Context, userID, documentID string) (*models.Draft, error) {
	draft, ok := r.drafts[draftKey(userID, documentID)]
	if !ok {
		return nil, fmt.Errorf("draft for document %s: %w", documentID, domain.ErrNotFound)
	}
	cp := *draft
	return &cp, nil
}

func (r *fakeDraftRepo) Delete(ctx context.Context, userID, documentID string) error {
	delete(r.drafts, draftKey(userID, documentID))
	return nil
}

// fakePileRepo keeps piles in a map keyed by id
type fakePileRepo struct {
	piles map[string]*models.Pile
}

func newFakePileRepo() *fakePileRepo {
	return &fakePileRepo{piles: make(map[string]*models.Pile)}
}

func (r *fakePileRepo) Create(ctx context.Context, pile *models.Pile) error {
	cp := *pile
	r.piles[pile.ID] = &cp
	return nil
}

func (r *fakePileRepo) GetByID(ctx context.Context, id, userID string) (*models.Pile, error) {
	pile, ok := r.piles[id]
	if !ok || pile.UserID != userID {
		return nil, fmt.Errorf("pile %s: %w", id, domain.ErrNotFound)
	}
	cp := *pile
	return &cp, nil
}

func (r *fakePileRepo) ListByUser(ctx context.Context, userID string) ([]models.Pile, error) {
	var out []models.Pile
	for _, pile := range r.piles {
		if pile.UserID == userID {
			out = append(out, *pile)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePileRepo) Update(ctx context.Context, pile *models.Pile) error {
	if _, ok := r.piles[pile.ID]; !ok {
		return fmt.Errorf("pile %s: %w", pile.ID, domain.ErrNotFound)
	}
	cp := *pile
	r.piles[pile.ID] = &cp
	return nil
}

func (r *fakePileRepo) Delete(ctx context.Context, id, userID string) error {
	pile, ok := r.piles[id]
	if !ok || pile.UserID != userID {
		return fmt.Errorf("pile %s: %w", id, domain.ErrNotFound)
	}
	delete(r.piles, id)
	return nil
}

func (r *fakePileRepo) DeleteByFolder(ctx context.Context, folderID, userID string) error {
	for id, pile := range r.piles {
		if pile.UserID == userID && pile.FolderID != nil && *pile.FolderID == folderID {
			delete(r.piles, id)
		}
	}
	return nil
}

// fakeFolderRepo keeps folders in a map keyed by id
type fakeFolderRepo struct {
	folders map[string]*models.Folder
}

func newFakeFolderRepo() *fakeFolderRepo {
	return &fakeFolderRepo{folders: make(map[string]*models.Folder)}
}

func (r *fakeFolderRepo) Create(ctx context.Context, folder *models.Folder) error {
	cp := *folder
	r.folders[folder.ID] = &cp
	return nil
}

func (r *fakeFolderRepo) GetByID(ctx context.Context, id, userID string) (*models.Folder, error) {
	folder, ok := r.folders[id]
	if !ok || folder.UserID != userID {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	cp := *folder
	return &cp, nil
}

func (r *fakeFolderRepo) ListByUser(ctx context.Context, userID string, kind models.FolderKind) ([]models.Folder, error) {
	var out []models.Folder
	for _, folder := range r.folders {
		if folder.UserID == userID && folder.Kind == kind {
			out = append(out, *folder)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeFolderRepo) Update(ctx context.Context, folder *models.Folder) error {
	if _, ok := r.folders[folder.ID]; !ok {
		return fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
	}
	cp := *folder
	r.folders[folder.ID] = &cp
	return nil
}

func (r *fakeFolderRepo) Delete(ctx context.Context, id, userID string) error {
	folder, ok := r.folders[id]
	if !ok || folder.UserID != userID {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}
	delete(r.folders, id)
	return nil
}

// fakeTodoRepo keeps todos in a map keyed by id
type fakeTodoRepo struct {
	todos map[string]*models.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[string]*models.Todo)}
}

func (r *fakeTodoRepo) Create(ctx context.Context, todo *models.Todo) error {
	cp := *todo
	r.todos[todo.ID] = &cp
	return nil
}

func (r *fakeTodoRepo) GetByID(ctx context.Context, id, userID string) (*models.Todo, error) {
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return nil, fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	cp := *todo
	return &cp, nil
}

func (r *fakeTodoRepo) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	var out []models.Todo
	for _, todo := range r.todos {
		if todo.UserID == userID {
			out = append(out, *todo)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTodoRepo) Update(ctx context.Context, todo *models.Todo) error {
	if _, ok := r.todos[todo.ID]; !ok {
		return fmt.Errorf("todo %s: %w", todo.ID, domain.ErrNotFound)
	}
	cp := *todo
	r.todos[todo.ID] = &cp
	return nil
}

func (r *fakeTodoRepo) Delete(ctx context.Context, id, userID string) error {
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return fmt.Errorf("todo %s: %w", id, domain.ErrNotFound)
	}
	delete(r.todos, id)
	return nil
}

// fakeStatRepo keys statistics by user+date
type fakeStatRepo struct {
	stats map[string]*models.Statistic
}

func newFakeStatRepo() *fakeStatRepo {
	return &fakeStatRepo{stats: make(map[string]*models.Statistic)}
}

func statKey(userID, date string) string {
	return userID + "/" + date
}

func (r *fakeStatRepo) GetByDate(ctx context.Context, userID, date string) (*models.Statistic, error) {
	stat, ok := r.stats[statKey(userID, date)]
	if !ok {
		return nil, fmt.Errorf("statistic %s: %w", date, domain.ErrNotFound)
	}
	cp := *stat
	return &cp, nil
}

func (r *fakeStatRepo) ListByUser(ctx context.Context, userID string) ([]models.Statistic, error) {
	var out []models.Statistic
	for _, stat := range r.stats {
		if stat.UserID == userID {
			out = append(out, *stat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *fakeStatRepo) Upsert(ctx context.Context, stat *models.Statistic) error {
	cp := *stat
	r.stats[statKey(stat.UserID, stat.Date)] = &cp
	return nil
}

// fakeSettingsRepo keys settings by user
type fakeSettingsRepo struct {
	settings map[string]*models.UserSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[string]*models.UserSettings)}
}

func (r *fakeSettingsRepo) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, ok := r.settings[userID]
	if !ok {
		return nil, fmt.Errorf("settings for %s: %w", userID, domain.ErrNotFound)
	}
	cp := *settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Upsert(ctx context.Context, settings *models.UserSettings) error {
	cp := *settings
	r.settings[settings.UserID] = &cp
	return nil
}

// fakeShareRepo keeps shares in a map keyed by id
type fakeShareRepo struct {
	shares map[string]*models.Share
}

func newFakeShareRepo() *fakeShareRepo {
	return &fakeShareRepo{shares: make(map[string]*models.Share)}
}

func (r *fakeShareRepo) Create(ctx context.Context, share *models.Share) error {
	cp := *share
	r.shares[share.ID] = &cp
	return nil
}

func (r *fakeShareRepo) GetByID(ctx context.Context, id string) (*models.Share, error) {
	share, ok := r.shares[id]
	if !ok {
		return nil, fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
	}
	cp := *share
	return &cp, nil
}

func (r *fakeShareRepo) ListByRecipient(ctx context.Context, email string) ([]models.Share, error) {
	var out []models.Share
	for _, share := range r.shares {
		if share.AddressedTo(email) {
			out = append(out, *share)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeShareRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.shares[id]; !ok {
		return fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
	}
	delete(r.shares, id)
	return nil
}

// fakeTxManager runs the function directly, no transaction semantics
type fakeTxManager struct{}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	return fn(ctx)
}
