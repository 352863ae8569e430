// Package note implements the notes access-control and persistence
// contract: every operation resolves the caller's identity from the
// context and delegates to a repository that scopes all reads and writes
// by (id, owner).
package note

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

type noteRepo interface {
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	GetByID(ctx context.Context, ownerID string, id int64) (*domain.Note, error)
	List(ctx context.Context, ownerID string, filter domain.NoteFilter) ([]domain.Note, error)
	Update(ctx context.Context, ownerID string, id, expectedVersion int64, upd domain.NoteUpdate) (*domain.Note, error)
	SoftDelete(ctx context.Context, ownerID string, id int64) error
	ListCategories(ctx context.Context, ownerID string) ([]string, error)
}

// Service provides note management operations.
type Service struct {
	notes noteRepo
	log   *slog.Logger
}

// NewService creates a new note service.
func NewService(log *slog.Logger, notes noteRepo) *Service {
	return &Service{
		notes: notes,
		log:   log.With("service", "note"),
	}
}

// trimOrNil trims whitespace. Returns nil if the result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
