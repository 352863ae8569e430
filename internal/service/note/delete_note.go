package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	"github.com/heartmarshall/mynotes-backend/pkg/ctxutil"
)

// DeleteNote soft-deletes a note owned by the caller. The row persists but
// disappears from every read path, so deleting it again reports NotFound.
func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if id <= 0 {
		return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}

	if err := s.notes.SoftDelete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("owner_id", ownerID),
		slog.Int64("note_id", id),
	)

	return nil
}
