package note

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	"github.com/heartmarshall/mynotes-backend/pkg/ctxutil"
)

// CreateNote creates a new note for the authenticated owner. The owner
// identity comes from the context; the store assigns id and timestamps.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.notes.Create(ctx, &domain.Note{
		OwnerID:  ownerID,
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("owner_id", ownerID),
		slog.Int64("note_id", created.ID),
		slog.String("category", created.Category),
	)

	return created, nil
}
