// Package domain holds the core entities and error taxonomy of the notes
// backend. It has no dependencies on transport or storage.
package domain

import "time"

// Field limits enforced on note input.
const (
	MaxTitleLength    = 200
	MaxCategoryLength = 100

	// DefaultCategory is applied when a note is created or updated
	// without an explicit category.
	DefaultCategory = "General"
)

// Note is a user-owned note record.
//
// OwnerID is the opaque identifier supplied by the authentication boundary;
// it is set once at creation and never changes. Version is the optimistic
// concurrency token, bumped by the store on every successful mutation.
// A note with IsDeleted set is invisible to every read path but its row
// is never removed.
type Note struct {
	ID        int64
	OwnerID   string
	Title     string
	Content   string
	Category  string
	Version   int64
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteFilter narrows a note listing. Nil fields mean "no filter".
type NoteFilter struct {
	// Search matches notes whose title or content contains the value
	// (case-insensitive substring).
	Search *string
	// Category matches notes with exactly this category.
	Category *string
}

// NoteUpdate carries the full replacement values for the mutable fields
// of a note.
type NoteUpdate struct {
	Title    string
	Content  string
	Category string
}
