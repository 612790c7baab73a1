package repository

import (
	"context"

	"library-backend/internal/domains/publisher/model"
)

// RepositoryInterface defines data access for the publisher domain
type RepositoryInterface interface {
	// Create inserts a new publisher; the store assigns the ID
	Create(ctx context.Context, publisher *model.Publisher) (*model.Publisher, error)

	// GetByID returns nil, nil if not found
	GetByID(ctx context.Context, id int64) (*model.Publisher, error)

	// List returns every publisher ordered by ID
	List(ctx context.Context) ([]*model.Publisher, error)

	// Update overwrites the stored row with publisher's descriptive fields.
	// Returns a PUBLISHER_NOT_FOUND error if the row no longer exists.
	Update(ctx context.Context, publisher *model.Publisher) (*model.Publisher, error)

	// Delete removes a publisher. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id int64) error
}
