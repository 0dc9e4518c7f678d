package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"bookshop-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, in user.RegisterInput) (*user.User, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uint) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserService) UpdateShipping(ctx context.Context, p user.UpdateShippingParams) (*user.User, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Register(ctx context.Context, userID uint, jti string, ttl time.Duration) error {
	return m.Called(ctx, userID, jti, ttl).Error(0)
}

func (m *MockTokenStore) IsActive(ctx context.Context, userID uint, jti string) (bool, error) {
	args := m.Called(ctx, userID, jti)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenStore) RevokeAll(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

func newTestService(t *testing.T) (Service, *MockUserService, *MockTokenStore, *Issuer) {
	issuer, err := NewIssuer("testsecret", time.Hour)
	require.NoError(t, err)
	users := new(MockUserService)
	store := new(MockTokenStore)
	return NewService(users, issuer, store), users, store, issuer
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, users, store, issuer := newTestService(t)
		u := testUser()

		users.On("Authenticate", ctx, u.Email, "password123").Return(u, nil)
		store.On("Register", ctx, u.ID, mock.AnythingOfType("string"), time.Hour).Return(nil)

		sess, err := svc.Login(ctx, u.Email, "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.Token)
		assert.Equal(t, "Bearer", sess.TokenType)
		assert.Equal(t, u, sess.User)

		claims, err := issuer.Parse(sess.Token)
		require.NoError(t, err)
		store.AssertCalled(t, "Register", ctx, u.ID, claims.ID, time.Hour)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, users, store, _ := newTestService(t)

		users.On("Authenticate", ctx, "rina@example.com", "bad").Return(nil, user.ErrInvalidCredentials)

		sess, err := svc.Login(ctx, "rina@example.com", "bad")
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
		assert.Nil(t, sess)
		store.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StoreError", func(t *testing.T) {
		svc, users, store, _ := newTestService(t)
		u := testUser()

		users.On("Authenticate", ctx, u.Email, "password123").Return(u, nil)
		store.On("Register", ctx, u.ID, mock.Anything, time.Hour).Return(errors.New("redis down"))

		sess, err := svc.Login(ctx, u.Email, "password123")
		assert.EqualError(t, err, "redis down")
		assert.Nil(t, sess)
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	in := user.RegisterInput{Name: "Rina", Email: "rina@example.com", Password: "password123"}

	t.Run("Success", func(t *testing.T) {
		svc, users, store, _ := newTestService(t)

		users.On("Register", ctx, in).Return(testUser(), nil)
		store.On("Register", ctx, uint(1), mock.Anything, time.Hour).Return(nil)

		sess, err := svc.Register(ctx, in)
		require.NoError(t, err)
		assert.NotEmpty(t, sess.Token)
	})

	t.Run("EmailExists", func(t *testing.T) {
		svc, users, store, _ := newTestService(t)

		users.On("Register", ctx, in).Return(nil, user.ErrEmailExists)

		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, user.ErrEmailExists)
		store.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("NoIdentity", func(t *testing.T) {
		svc, _, store, _ := newTestService(t)

		err := svc.Logout(ctx, 0)
		assert.ErrorIs(t, err, ErrNotAuthenticated)
		store.AssertNotCalled(t, "RevokeAll", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		svc, _, store, _ := newTestService(t)
		store.On("RevokeAll", ctx, uint(1)).Return(nil)

		assert.NoError(t, svc.Logout(ctx, 1))
		store.AssertExpectations(t)
	})
}

func TestService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})

	t.Run("Active", func(t *testing.T) {
		svc, _, store, issuer := newTestService(t)
		token, claims, err := issuer.Generate(testUser())
		require.NoError(t, err)

		store.On("IsActive", ctx, uint(1), claims.ID).Return(true, nil)

		got, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, claims.ID, got.ID)
	})

	t.Run("Revoked", func(t *testing.T) {
		svc, _, store, issuer := newTestService(t)
		token, claims, err := issuer.Generate(testUser())
		require.NoError(t, err)

		store.On("IsActive", ctx, uint(1), claims.ID).Return(false, nil)

		_, err = svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrTokenRevoked)
	})

	t.Run("Malformed", func(t *testing.T) {
		svc, _, store, _ := newTestService(t)

		_, err := svc.Authenticate(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidToken)
		store.AssertNotCalled(t, "IsActive", mock.Anything, mock.Anything, mock.Anything)
	})
}
