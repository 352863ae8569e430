// Package note implements the note repository using PostgreSQL.
//
// Every query is built through scopedSelect or carries the same
// owner/soft-delete predicate, so no code path can observe or mutate a row
// belonging to another owner, and deleted rows stay invisible to every
// read. Cross-owner access and nonexistence are both domain.ErrNotFound.
package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/mynotes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

const notesTable = "notes"

var noteColumns = []string{
	"id", "owner_id", "title", "content", "category",
	"version", "is_deleted", "created_at", "updated_at",
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new note repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// noteRow mirrors the notes table for scanning.
type noteRow struct {
	ID        int64     `db:"id"`
	OwnerID   string    `db:"owner_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Category  string    `db:"category"`
	Version   int64     `db:"version"`
	IsDeleted bool      `db:"is_deleted"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r noteRow) toDomain() domain.Note {
	return domain.Note{
		ID:        r.ID,
		OwnerID:   r.OwnerID,
		Title:     r.Title,
		Content:   r.Content,
		Category:  r.Category,
		Version:   r.Version,
		IsDeleted: r.IsDeleted,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// scopedSelect is the single path every read goes through: it carries both
// the owner predicate and the soft-delete filter.
func scopedSelect(ownerID string) squirrel.SelectBuilder {
	return builder.
		Select(noteColumns...).
		From(notesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where("NOT is_deleted")
}

// GetByID returns an active note scoped to (id, owner).
// Returns domain.ErrNotFound if the note does not exist, is soft-deleted,
// or belongs to another owner.
func (r *Repo) GetByID(ctx context.Context, ownerID string, id int64) (*domain.Note, error) {
	sql, args, err := scopedSelect(ownerID).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "note", id)
	}

	n := row.toDomain()
	return &n, nil
}

// List returns the owner's active notes, optionally filtered, ordered by
// updated_at descending. Returns an empty slice (not nil) when nothing
// matches.
func (r *Repo) List(ctx context.Context, ownerID string, filter domain.NoteFilter) ([]domain.Note, error) {
	q := scopedSelect(ownerID)

	if filter.Search != nil {
		pattern := "%" + escapeLike(*filter.Search) + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
		})
	}
	if filter.Category != nil {
		q = q.Where(squirrel.Eq{"category": *filter.Category})
	}

	sql, args, err := q.OrderBy("updated_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	var rows []noteRow
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "note", 0)
	}

	notes := make([]domain.Note, len(rows))
	for i, row := range rows {
		notes[i] = row.toDomain()
	}

	return notes, nil
}

// Create inserts a new note and returns the persisted row with its
// assigned id, initial version, and identical created_at/updated_at.
func (r *Repo) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	sql, args, err := builder.
		Insert(notesTable).
		Columns("owner_id", "title", "content", "category").
		Values(note.OwnerID, note.Title, note.Content, note.Category).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "note", 0)
	}

	n := row.toDomain()
	return &n, nil
}

// Update overwrites the mutable fields of an active note scoped to
// (id, owner), guarded by the version captured at read time. When the
// guarded update matches no row, the note is re-checked under the same
// scope: still live means a concurrent writer won (domain.ErrConflict),
// gone means domain.ErrNotFound.
func (r *Repo) Update(ctx context.Context, ownerID string, id, expectedVersion int64, upd domain.NoteUpdate) (*domain.Note, error) {
	sql, args, err := builder.
		Update(notesTable).
		Set("title", upd.Title).
		Set("content", upd.Content).
		Set("category", upd.Category).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Where("NOT is_deleted").
		Where(squirrel.Eq{"version": expectedVersion}).
		Suffix("RETURNING " + strings.Join(noteColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	var row noteRow
	if err := pgxscan.Get(ctx, r.db, &row, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.staleOrMissing(ctx, ownerID, id)
		}
		return nil, postgres.MapError(err, "note", id)
	}

	n := row.toDomain()
	return &n, nil
}

// SoftDelete marks an active note as deleted and stamps updated_at.
// Returns domain.ErrNotFound if the note does not exist, is already
// deleted, or belongs to another owner.
func (r *Repo) SoftDelete(ctx context.Context, ownerID string, id int64) error {
	sql, args, err := builder.
		Update(notesTable).
		Set("is_deleted", true).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Where("NOT is_deleted").
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "note", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListCategories returns the distinct categories across the owner's active
// notes, lexicographically sorted. Returns an empty slice (not nil) when
// the owner has no active notes.
func (r *Repo) ListCategories(ctx context.Context, ownerID string) ([]string, error) {
	sql, args, err := builder.
		Select("DISTINCT category").
		From(notesTable).
		Where(squirrel.Eq{"owner_id": ownerID}).
		Where("NOT is_deleted").
		OrderBy("category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build categories query: %w", err)
	}

	var categories []string
	if err := pgxscan.Select(ctx, r.db, &categories, sql, args...); err != nil {
		return nil, postgres.MapError(err, "note", 0)
	}

	if categories == nil {
		categories = []string{}
	}

	return categories, nil
}

// HardDeleteOld physically removes soft-deleted notes whose last update is
// older than the threshold. Used by the cleanup command, never by request
// handlers.
func (r *Repo) HardDeleteOld(ctx context.Context, olderThan time.Time) (int64, error) {
	sql, args, err := builder.
		Delete(notesTable).
		Where("is_deleted").
		Where(squirrel.Lt{"updated_at": olderThan}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build hard delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "note", 0)
	}

	return tag.RowsAffected(), nil
}

// staleOrMissing disambiguates a guarded update that matched no row.
func (r *Repo) staleOrMissing(ctx context.Context, ownerID string, id int64) error {
	sql, args, err := builder.
		Select("1").
		From(notesTable).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		Where("NOT is_deleted").
		ToSql()
	if err != nil {
		return fmt.Errorf("build exists query: %w", err)
	}

	var one int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("note %d: %w", id, domain.ErrNotFound)
		}
		return postgres.MapError(err, "note", id)
	}

	return fmt.Errorf("note %d: %w", id, domain.ErrConflict)
}

// escapeLike escapes LIKE wildcards so search terms match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
