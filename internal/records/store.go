// Package records holds the case/note domain model and its persistence
// implementations. Implementations take statement templates plus bound
// arguments, never interpolated strings.
package records

import "context"

// Store is the record persistence contract the request pipeline delegates to.
// Each operation is a single independent store call; there are no multi-record
// transactions and no retries.
type Store interface {
	ListCases(ctx context.Context) ([]Case, error)
	CreateCase(ctx context.Context, c Case) error
	UpdateCase(ctx context.Context, id int64, u CaseUpdate) error
	DeleteCase(ctx context.Context, id int64) error

	ListNotes(ctx context.Context) ([]Note, error)
	CreateNote(ctx context.Context, category, content string) (int64, error)
	UpdateNote(ctx context.Context, id int64, content string) error
	DeleteNote(ctx context.Context, id int64) error
}
