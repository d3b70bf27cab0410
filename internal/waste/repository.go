package waste

import "context"

// Repository is the read-mostly waste log store: list everything,
// append one. No updates, no deletes, no transactions needed.
type Repository interface {
	// ListAll returns entries newest first.
	ListAll(ctx context.Context) ([]Entry, error)

	// Append stores a new entry at the front of the log.
	Append(ctx context.Context, entry Entry) error
}
