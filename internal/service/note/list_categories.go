package note

import (
	"context"
	"fmt"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
	"github.com/heartmarshall/mynotes-backend/pkg/ctxutil"
)

// ListCategories returns the distinct categories across the caller's
// active notes, lexicographically sorted.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	categories, err := s.notes.ListCategories(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return categories, nil
}
