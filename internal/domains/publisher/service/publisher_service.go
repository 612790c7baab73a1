package service

import (
	"context"

	"library-backend/internal/domains/publisher/model"
	"library-backend/internal/domains/publisher/repository"

	"github.com/rs/zerolog/log"
)

// publisherService implements ServiceInterface
type publisherService struct {
	repo repository.RepositoryInterface
}

func NewPublisherService(repo repository.RepositoryInterface) ServiceInterface {
	return &publisherService{
		repo: repo,
	}
}

func (s *publisherService) ListPublishers(ctx context.Context) ([]model.PublisherResponse, error) {
	pubs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.ToResponses(pubs), nil
}

func (s *publisherService) GetPublisher(ctx context.Context, id int64) (*model.PublisherResponse, error) {
	pub, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return pub.ToResponse(), nil
}

func (s *publisherService) CreatePublisher(ctx context.Context, req *model.PublisherRequest) (*model.PublisherResponse, error) {
	if err := model.ValidateRequest(req); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, model.NewPublisher(req))
	if err != nil {
		return nil, err
	}

	log.Info().Int64("publisher_id", created.ID).Msg("publisher created")
	return created.ToResponse(), nil
}

func (s *publisherService) UpdatePublisher(ctx context.Context, id int64, req *model.PublisherRequest) (*model.PublisherResponse, error) {
	if err := model.ValidateRequest(req); err != nil {
		return nil, err
	}

	// Fetch first so a missing ID is reported before anything is written
	existing, err := s.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}

	model.ApplyRequest(req, existing)
	existing.ID = id

	saved, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	log.Info().Int64("publisher_id", saved.ID).Msg("publisher updated")
	return saved.ToResponse(), nil
}

func (s *publisherService) DeletePublisher(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info().Int64("publisher_id", id).Msg("publisher deleted")
	return nil
}

func (s *publisherService) findExisting(ctx context.Context, id int64) (*model.Publisher, error) {
	pub, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pub == nil {
		return nil, model.NewPublisherNotFound(id)
	}
	return pub, nil
}
