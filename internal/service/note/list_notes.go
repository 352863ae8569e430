package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	"github.com/heartmarshall/mynotes-backend/pkg/ctxutil"
)

// ListNotes returns the caller's active notes, optionally filtered by a
// substring search over title/content and an exact category match,
// ordered by most recently touched first. An empty result is a valid
// outcome, not an error.
func (s *Service) ListNotes(ctx context.Context, input ListNotesInput) ([]domain.Note, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	notes, err := s.notes.List(ctx, ownerID, input.filter())
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}
