package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	"github.com/heartmarshall/mynotes-backend/pkg/ctxutil"
)

// GetNote returns a single active note owned by the caller. A note owned
// by someone else is indistinguishable from a missing one.
func (s *Service) GetNote(ctx context.Context, id int64) (*domain.Note, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if id <= 0 {
		return nil, fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}

	note, err := s.notes.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}
