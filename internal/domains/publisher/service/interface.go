package service

import (
	"context"

	"library-backend/internal/domains/publisher/model"
)

// ServiceInterface defines the business operations of the publisher domain
type ServiceInterface interface {
	// ListPublishers returns every publisher in store order; empty, never nil
	ListPublishers(ctx context.Context) ([]model.PublisherResponse, error)

	// GetPublisher returns a PUBLISHER_NOT_FOUND error when the ID does not exist
	GetPublisher(ctx context.Context, id int64) (*model.PublisherResponse, error)

	CreatePublisher(ctx context.Context, req *model.PublisherRequest) (*model.PublisherResponse, error)

	// UpdatePublisher fetches, merges the request into the stored entity, then saves
	UpdatePublisher(ctx context.Context, id int64, req *model.PublisherRequest) (*model.PublisherResponse, error)

	// DeletePublisher is idempotent
	DeletePublisher(ctx context.Context, id int64) error
}
