package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	"github.com/heartmarshall/mynotes-backend/pkg/ctxutil"
)

// UpdateNote overwrites the mutable fields of a note owned by the caller.
// The note's version is captured by a scoped read and passed to the
// guarded write; a concurrent writer that lands in between surfaces as
// domain.ErrConflict, telling the caller to re-fetch and retry.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.notes.GetByID(ctx, ownerID, input.NoteID)
	if err != nil {
		return nil, fmt.Errorf("load note: %w", err)
	}

	updated, err := s.notes.Update(ctx, ownerID, current.ID, current.Version, domain.NoteUpdate{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("owner_id", ownerID),
		slog.Int64("note_id", updated.ID),
		slog.Int64("version", updated.Version),
	)

	return updated, nil
}
