package user

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) (*User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) UpdateShipping(ctx context.Context, p UpdateShippingParams) (*User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	in := RegisterInput{Name: " John ", Email: "John@Example.com", Password: "password123"}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
			return u.Name == "John" &&
				u.Email == "john@example.com" &&
				u.Status == StatusActive &&
				slices.Equal(u.Roles, Roles{RoleCustomer}) &&
				VerifyPassword("password123", u.Password)
		})).Return(&User{ID: 1, Email: "john@example.com"}, nil)

		u, err := svc.Register(ctx, in)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("EmailExists", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(nil, ErrEmailExists)

		_, err := svc.Register(ctx, in)

		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).Return(nil, errors.New("db error"))

		_, err := svc.Register(ctx, in)

		assert.EqualError(t, err, "db error")
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()
	email := "test@example.com"
	password := "password123"

	hashedPassword, err := HashPassword(password)
	require.NoError(t, err)

	active := &User{ID: 1, Email: email, Password: hashedPassword, Roles: Roles{RoleCustomer}, Status: StatusActive}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(active, nil)

		u, err := svc.Authenticate(ctx, " Test@example.com", password)

		assert.NoError(t, err)
		assert.Equal(t, active, u)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(nil, ErrUserNotFound)

		_, err := svc.Authenticate(ctx, email, password)

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("InvalidPassword", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(active, nil)

		u, err := svc.Authenticate(ctx, email, "wrongpassword")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, u)
	})

	t.Run("Inactive", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		inactive := *active
		inactive.Status = StatusInactive
		mockRepo.On("FindByEmail", ctx, email).Return(&inactive, nil)

		_, err := svc.Authenticate(ctx, email, password)

		assert.ErrorIs(t, err, ErrUserInactive)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("FindByEmail", ctx, email).Return(nil, errors.New("db down"))

		_, err := svc.Authenticate(ctx, email, password)

		assert.EqualError(t, err, "db down")
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)
	expected := &User{ID: 5}

	mockRepo.On("FindByID", ctx, uint(5)).Return(expected, nil)
	mockRepo.On("FindByID", ctx, uint(6)).Return(nil, ErrUserNotFound)

	u, err := svc.GetByID(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, expected, u)

	_, err = svc.GetByID(ctx, 6)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_UpdateShipping(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	address := "  Jl. Merdeka 1 "
	mockRepo.On("UpdateShipping", ctx, mock.MatchedBy(func(p UpdateShippingParams) bool {
		return p.UserID == 1 && p.Address != nil && *p.Address == "Jl. Merdeka 1"
	})).Return(&User{ID: 1}, nil)

	u, err := svc.UpdateShipping(ctx, UpdateShippingParams{UserID: 1, Address: &address})

	assert.NoError(t, err)
	assert.Equal(t, uint(1), u.ID)
	mockRepo.AssertExpectations(t)
}
