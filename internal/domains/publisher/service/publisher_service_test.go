package service

import (
	"context"
	"errors"
	"testing"

	"library-backend/internal/domains/publisher/model"
	"library-backend/internal/domains/publisher/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	args := m.Called(ctx, pub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Publisher), args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*model.Publisher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Publisher), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context) ([]*model.Publisher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Publisher), args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, pub *model.Publisher) (*model.Publisher, error) {
	args := m.Called(ctx, pub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Publisher), args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func strPtr(s string) *string { return &s }

func TestListPublishers(t *testing.T) {
	repo := new(mockRepository)
	svc := NewPublisherService(repo)

	repo.On("List", mock.Anything).Return([]*model.Publisher{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}}, nil).Once()
	out, err := svc.ListPublishers(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)

	repo.On("List", mock.Anything).Return([]*model.Publisher{}, nil).Once()
	out, err = svc.ListPublishers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	repo.AssertExpectations(t)
}

func TestListPublishers_StoreError(t *testing.T) {
	repo := new(mockRepository)
	svc := NewPublisherService(repo)
	storeErr := model.NewListPublisherError(errors.New("db down"))

	repo.On("List", mock.Anything).Return(nil, storeErr)

	_, err := svc.ListPublishers(context.Background())
	assert.ErrorIs(t, err, storeErr)
}

func TestGetPublisher(t *testing.T) {
	repo := new(mockRepository)
	svc := NewPublisherService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&model.Publisher{ID: 1, Name: "Acme"}, nil)
	repo.On("GetByID", mock.Anything, int64(2)).Return(nil, nil)

	got, err := svc.GetPublisher(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)

	_, err = svc.GetPublisher(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, model.IsPublisherNotFound(err))
	assert.Contains(t, err.Error(), "Publisher with ID 2 not found")
}

func TestCreatePublisher(t *testing.T) {
	repo := new(mockRepository)
	svc := NewPublisherService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Publisher) bool {
		return p.ID == 0 && p.Name == "Acme" && *p.Email == "sales@acme.io"
	})).Return(&model.Publisher{ID: 10, Name: "Acme", Email: strPtr("sales@acme.io")}, nil)

	out, err := svc.CreatePublisher(context.Background(), &model.PublisherRequest{
		Name:  " Acme ",
		Email: strPtr("Sales@Acme.io"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.ID)
	repo.AssertExpectations(t)
}

func TestCreatePublisher_InvalidRequestSkipsStore(t *testing.T) {
	repo := new(mockRepository)
	svc := NewPublisherService(repo)

	_, err := svc.CreatePublisher(context.Background(), &model.PublisherRequest{})
	require.Error(t, err)
	assert.Equal(t, model.CodeInvalidPublisher, model.GetErrorCode(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdatePublisher_MergesAndPreservesID(t *testing.T) {
	repo := new(mockRepository)
	svc := NewPublisherService(repo)

	existing := &model.Publisher{ID: 3, Name: "Acme", Phone: strPtr("+1 555 0100")}
	repo.On("GetByID", mock.Anything, int64(3)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Publisher) bool {
		return p.ID == 3 && p.Name == "Acme Inc" && *p.Phone == "+1 555 0100"
	})).Return(&model.Publisher{ID: 3, Name: "Acme Inc", Phone: strPtr("+1 555 0100")}, nil)

	out, err := svc.UpdatePublisher(context.Background(), 3, &model.PublisherRequest{Name: "Acme Inc"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ID)
	assert.Equal(t, "Acme Inc", out.Name)
	assert.Equal(t, "+1 555 0100", *out.Phone)
	repo.AssertExpectations(t)
}

func TestUpdatePublisher_NotFoundDoesNotWrite(t *testing.T) {
	repo := new(mockRepository)
	svc := NewPublisherService(repo)

	repo.On("GetByID", mock.Anything, int64(4)).Return(nil, nil)

	_, err := svc.UpdatePublisher(context.Background(), 4, &model.PublisherRequest{Name: "Acme"})
	assert.True(t, model.IsPublisherNotFound(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeletePublisher(t *testing.T) {
	repo := new(mockRepository)
	svc := NewPublisherService(repo)

	repo.On("Delete", mock.Anything, int64(5)).Return(nil)
	assert.NoError(t, svc.DeletePublisher(context.Background(), 5))

	storeErr := model.NewDeletePublisherError(errors.New("db down"))
	repo.On("Delete", mock.Anything, int64(6)).Return(storeErr)
	assert.ErrorIs(t, svc.DeletePublisher(context.Background(), 6), storeErr)
}

// Properties from the resource contract, checked against the in-memory store.
func TestPublisherService_Properties(t *testing.T) {
	ctx := context.Background()
	svc := NewPublisherService(repository.NewMemoryRepository())

	a, err := svc.CreatePublisher(ctx, &model.PublisherRequest{Name: "Acme", Address: strPtr("1 Main St")})
	require.NoError(t, err)
	b, err := svc.CreatePublisher(ctx, &model.PublisherRequest{Name: "Globex"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)

	got, err := svc.GetPublisher(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "Acme", got.Name)
	assert.Equal(t, "1 Main St", *got.Address)

	upd, err := svc.UpdatePublisher(ctx, a.ID, &model.PublisherRequest{Name: "Acme Inc"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, upd.ID)
	assert.Equal(t, "1 Main St", *upd.Address)

	require.NoError(t, svc.DeletePublisher(ctx, a.ID))
	require.NoError(t, svc.DeletePublisher(ctx, a.ID))
	require.NoError(t, svc.DeletePublisher(ctx, 999))

	_, err = svc.GetPublisher(ctx, a.ID)
	assert.True(t, model.IsPublisherNotFound(err))
	_, err = svc.UpdatePublisher(ctx, 999, &model.PublisherRequest{Name: "Nobody"})
	assert.True(t, model.IsPublisherNotFound(err))

	list, err := svc.ListPublishers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}
