package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thecoders/cartunn-backend/internal/domain"
	apperrors "github.com/thecoders/cartunn-backend/pkg/util/errorutil"
)

type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) ExistsByEmailExcludingID(ctx context.Context, email string, id int64) (bool, error) {
	args := m.Called(ctx, email, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileRepository) FindByID(ctx context.Context, id int64) (*domain.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) FindAll(ctx context.Context) ([]domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Save(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileRepository) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCreateProfileRejectsDuplicateEmail(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(true, nil)

	svc := NewProfileService(repo)

	profile, err := svc.Create(context.Background(), CreateProfileCommand{Email: "ana@example.com"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeDuplicateKey))
	require.Nil(t, profile)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestCreateProfilePersists(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("ExistsByEmail", mock.Anything, "ana@example.com").Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Profile")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Profile).ID = 3
		}).
		Return(nil)

	svc := NewProfileService(repo)

	profile, err := svc.Create(context.Background(), CreateProfileCommand{
		FirstName: "Ana",
		LastName:  "Diaz",
		Email:     "ana@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, int64(3), profile.ID)
	require.Equal(t, "Ana", profile.FirstName)
	repo.AssertExpectations(t)
}

func TestUpdateProfileKeepsOwnEmail(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("ExistsByEmailExcludingID", mock.Anything, "ana@example.com", int64(3)).Return(false, nil)
	repo.On("FindByID", mock.Anything, int64(3)).Return(&domain.Profile{ID: 3, Email: "ana@example.com"}, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Profile")).Return(nil)

	svc := NewProfileService(repo)

	profile, err := svc.Update(context.Background(), UpdateProfileCommand{
		ProfileID: 3,
		FirstName: "Ana Maria",
		Email:     "ana@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", profile.FirstName)
	repo.AssertExpectations(t)
}

func TestUpdateProfileMissingTarget(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("ExistsByEmailExcludingID", mock.Anything, "ana@example.com", int64(99)).Return(false, nil)
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, pgx.ErrNoRows)

	svc := NewProfileService(repo)

	profile, err := svc.Update(context.Background(), UpdateProfileCommand{ProfileID: 99, Email: "ana@example.com"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	require.Nil(t, profile)
	repo.AssertExpectations(t)
}

func TestDeleteProfileMissingTarget(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("ExistsByID", mock.Anything, int64(99)).Return(false, nil)

	svc := NewProfileService(repo)

	err := svc.Delete(context.Background(), DeleteProfileCommand{ProfileID: 99})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeNotFound))
	repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestGetProfileByIDAbsentIsNotAnError(t *testing.T) {
	repo := new(MockProfileRepository)
	repo.On("FindByID", mock.Anything, int64(404)).Return(nil, pgx.ErrNoRows)

	svc := NewProfileService(repo)

	profile, err := svc.GetByID(context.Background(), GetProfileByIDQuery{ProfileID: 404})
	require.NoError(t, err)
	require.Nil(t, profile)
	repo.AssertExpectations(t)
}
