package note

import (
	"strings"

	"github.com/heartmarshall/mynotes-backend/internal/domain"
)

// CreateNoteInput holds the parameters for creating a note.
type CreateNoteInput struct {
	Title    string
	Content  string
	Category string
}

// normalized returns the input with whitespace trimmed and the category
// defaulted when blank.
func (i CreateNoteInput) normalized() CreateNoteInput {
	i.Title = strings.TrimSpace(i.Title)
	i.Category = strings.TrimSpace(i.Category)
	if i.Category == "" {
		i.Category = domain.DefaultCategory
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate() error {
	errs := validateNoteFields(i.Title, i.Content, i.Category)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNoteInput holds the parameters for updating a note. All mutable
// fields are overwritten; there are no partial updates.
type UpdateNoteInput struct {
	NoteID   int64
	Title    string
	Content  string
	Category string
}

func (i UpdateNoteInput) normalized() UpdateNoteInput {
	i.Title = strings.TrimSpace(i.Title)
	i.Category = strings.TrimSpace(i.Category)
	if i.Category == "" {
		i.Category = domain.DefaultCategory
	}
	return i
}

// Validate checks all fields and collects all errors.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateNoteFields(i.Title, i.Content, i.Category)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListNotesInput holds the optional filters for listing notes.
type ListNotesInput struct {
	Search   *string
	Category *string
}

// filter converts the input into a repository filter, dropping blank values.
func (i ListNotesInput) filter() domain.NoteFilter {
	return domain.NoteFilter{
		Search:   trimOrNil(i.Search),
		Category: trimOrNil(i.Category),
	}
}

// validateNoteFields checks the shared field constraints of create/update.
// The caller passes already-normalized values.
func validateNoteFields(title, content, category string) []domain.FieldError {
	var errs []domain.FieldError

	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > domain.MaxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(category) > domain.MaxCategoryLength {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 100 characters"})
	}

	return errs
}
