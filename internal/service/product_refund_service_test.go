package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thecoders/cartunn-backend/internal/domain"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

type MockProductRefundRepository struct {
	mock.Mock
}

func (m *MockProductRefundRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	args := m.Called(ctx, title)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRefundRepository) ExistsByTitleExcludingID(ctx context.Context, title string, id int64) (bool, error) {
	args := m.Called(ctx, title, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRefundRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRefundRepository) FindByID(ctx context.Context, id int64) (*domain.ProductRefund, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductRefund), args.Error(1)
}

func (m *MockProductRefundRepository) FindAll(ctx context.Context) ([]domain.ProductRefund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductRefund), args.Error(1)
}

func (m *MockProductRefundRepository) Save(ctx context.Context, refund *domain.ProductRefund) error {
	args := m.Called(ctx, refund)
	return args.Error(0)
}

func (m *MockProductRefundRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateProductRefundRejectsDuplicateTitle(t *testing.T) {
	repo := new(MockProductRefundRepository)
	repo.On("ExistsByTitle", mock.Anything, "Damaged box").Return(true, nil)

	svc := NewProductRefundService(repo)

	refund, err := svc.Create(context.Background(), CreateProductRefundCommand{Title: "Damaged box"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeDuplicateKey))
	require.Nil(t, refund)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreateProductRefundWrapsStoreFault(t *testing.T) {
	repo := new(MockProductRefundRepository)
	repo.On("ExistsByTitle", mock.Anything, "Damaged box").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.ProductRefund")).Return(errors.New("connection reset"))

	svc := NewProductRefundService(repo)

	refund, err := svc.Create(context.Background(), CreateProductRefundCommand{Title: "Damaged box"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodePersistenceFailure))
	require.Nil(t, refund)
	repo.AssertExpectations(t)
}

func TestUpdateProductRefundOverwritesFields(t *testing.T) {
	repo := new(MockProductRefundRepository)
	repo.On("ExistsByTitleExcludingID", mock.Anything, "Damaged box", int64(5)).Return(false, nil)
	repo.On("FindByID", mock.Anything, int64(5)).Return(&domain.ProductRefund{ID: 5, Title: "Damaged box", Status: "PENDING"}, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.ProductRefund")).Return(nil)

	svc := NewProductRefundService(repo)

	refund, err := svc.Update(context.Background(), UpdateProductRefundCommand{
		ProductRefundID: 5,
		Title:           "Damaged box",
		Description:     "Box arrived crushed",
		Status:          "APPROVED",
	})
	require.NoError(t, err)
	require.Equal(t, "APPROVED", refund.Status)
	require.Equal(t, "Box arrived crushed", refund.Description)
	repo.AssertExpectations(t)
}

func TestDeleteProductRefundMissingTarget(t *testing.T) {
	repo := new(MockProductRefundRepository)
	repo.On("ExistsByID", mock.Anything, int64(99)).Return(false, nil)

	svc := NewProductRefundService(repo)

	err := svc.Delete(context.Background(), DeleteProductRefundCommand{ProductRefundID: 99})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestGetAllProductRefunds(t *testing.T) {
	repo := new(MockProductRefundRepository)
	repo.On("FindAll", mock.Anything).Return([]domain.ProductRefund{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	svc := NewProductRefundService(repo)

	refunds, err := svc.GetAll(context.Background(), GetAllProductRefundsQuery{})
	require.NoError(t, err)
	require.Len(t, refunds, 3)
	repo.AssertExpectations(t)
}
