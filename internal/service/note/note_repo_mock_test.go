package note

// Manual mock (moq-style with func fields) for the noteRepo interface.

import (
	"context"
	"sync"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

type noteRepoMock struct {
	CreateFunc         func(ctx context.Context, note *domain.Note) (*domain.Note, error)
	GetByIDFunc        func(ctx context.Context, ownerID string, id int64) (*domain.Note, error)
	ListFunc           func(ctx context.Context, ownerID string, filter domain.NoteFilter) ([]domain.Note, error)
	UpdateFunc         func(ctx context.Context, ownerID string, id, expectedVersion int64, upd domain.NoteUpdate) (*domain.Note, error)
	SoftDeleteFunc     func(ctx context.Context, ownerID string, id int64) error
	ListCategoriesFunc func(ctx context.Context, ownerID string) ([]string, error)

	mu    sync.Mutex
	calls struct {
		Create         []*domain.Note
		GetByID        []int64
		List           []domain.NoteFilter
		Update         []int64
		SoftDelete     []int64
		ListCategories int
	}
}

func (m *noteRepoMock) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	m.mu.Lock()
	m.calls.Create = append(m.calls.Create, note)
	m.mu.Unlock()
	return m.CreateFunc(ctx, note)
}

func (m *noteRepoMock) GetByID(ctx context.Context, ownerID string, id int64) (*domain.Note, error) {
	m.mu.Lock()
	m.calls.GetByID = append(m.calls.GetByID, id)
	m.mu.Unlock()
	return m.GetByIDFunc(ctx, ownerID, id)
}

func (m *noteRepoMock) List(ctx context.Context, ownerID string, filter domain.NoteFilter) ([]domain.Note, error) {
	m.mu.Lock()
	m.calls.List = append(m.calls.List, filter)
	m.mu.Unlock()
	return m.ListFunc(ctx, ownerID, filter)
}

func (m *noteRepoMock) Update(ctx context.Context, ownerID string, id, expectedVersion int64, upd domain.NoteUpdate) (*domain.Note, error) {
	m.mu.Lock()
	m.calls.Update = append(m.calls.Update, id)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, ownerID, id, expectedVersion, upd)
}

func (m *noteRepoMock) SoftDelete(ctx context.Context, ownerID string, id int64) error {
	m.mu.Lock()
	m.calls.SoftDelete = append(m.calls.SoftDelete, id)
	m.mu.Unlock()
	return m.SoftDeleteFunc(ctx, ownerID, id)
}

func (m *noteRepoMock) ListCategories(ctx context.Context, ownerID string) ([]string, error) {
	m.mu.Lock()
	m.calls.ListCategories++
	m.mu.Unlock()
	return m.ListCategoriesFunc(ctx, ownerID)
}

func (m *noteRepoMock) CreateCalls() []*domain.Note {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *noteRepoMock) UpdateCalls() []int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Update
}

func (m *noteRepoMock) ListCalls() []domain.NoteFilter {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.List
}
