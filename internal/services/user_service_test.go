package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrm-api/internal/auth"
	"hrm-api/internal/models"
	"hrm-api/internal/services"
	"hrm-api/internal/storage"
	"hrm-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	jwtSecret   = "test-secret-key"
	jwtDuration = 15 * time.Minute
)

var (
	adminSession = &auth.Session{UserID: 1, Role: models.RoleAdmin, TokenID: "admin-jti", ExpiresAt: time.Now().Add(time.Hour)}
	hrSession    = &auth.Session{UserID: 2, Role: models.RoleHR, TokenID: "hr-jti", ExpiresAt: time.Now().Add(time.Hour)}
)

type userTest struct {
	repo    *MockUserRepository
	tokens  *auth.TokenManager
	revoker *auth.MemoryTokenRevoker
	service services.UserService
}

func setupUserTest(t *testing.T) *userTest {
	t.Helper()
	ut := &userTest{
		repo:    new(MockUserRepository),
		tokens:  auth.NewTokenManager(jwtSecret, jwtDuration),
		revoker: auth.NewMemoryTokenRevoker(),
	}
	ut.service = services.NewUserService(ut.repo, ut.tokens, ut.revoker)
	t.Cleanup(func() { ut.repo.AssertExpectations(t) })
	return ut
}

func TestUserService_Create(t *testing.T) {
	repoErrDbConnectionLost := errors.New("database connection lost")
	req := &dto.CreateUserRequest{
		Name:     "Test User",
		Email:    " Test@Example.com ",
		Password: "password123",
		Role:     models.RoleRecruiter,
	}

	tests := []struct {
		name          string
		caller        *auth.Session
		mockSetup     func(repo *MockUserRepository)
		expectedError error
		errorContains string
	}{
		{
			name:   "Success",
			caller: adminSession,
			mockSetup: func(repo *MockUserRepository) {
				repo.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.Email == "test@example.com" && auth.CheckPassword("password123", u.PasswordHash)
				})).Return(&models.User{ID: 10, Email: "test@example.com", Name: "Test User", Role: models.RoleRecruiter}, nil).Once()
			},
		},
		{
			name:          "Forbidden - Not Admin",
			caller:        hrSession,
			mockSetup:     func(repo *MockUserRepository) {},
			expectedError: services.ErrForbidden,
		},
		{
			name:   "Conflict - Duplicate Email",
			caller: adminSession,
			mockSetup: func(repo *MockUserRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateEmail).Once()
			},
			expectedError: services.ErrConflict,
			errorContains: "User already exists",
		},
		{
			name:   "Repository Error",
			caller: adminSession,
			mockSetup: func(repo *MockUserRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil, repoErrDbConnectionLost).Once()
			},
			expectedError: repoErrDbConnectionLost,
			errorContains: "internal error during create user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ut := setupUserTest(t)
			tt.mockSetup(ut.repo)

			user, err := ut.service.Create(context.Background(), tt.caller, req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), user.ID)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	stored := &models.User{ID: 3, Email: "test@example.com", Name: "Test User", Role: models.RoleHR, PasswordHash: hash}

	t.Run("Success", func(t *testing.T) {
		ut := setupUserTest(t)
		ut.repo.On("GetByEmail", mock.Anything, "test@example.com").Return(stored, nil).Once()

		res, err := ut.service.Login(context.Background(), &dto.LoginRequest{Email: "TEST@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)

		session, err := ut.tokens.Parse(res.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(3), session.UserID)
		assert.Equal(t, models.RoleHR, session.Role)
		assert.Equal(t, "Test User", session.Name)
		assert.WithinDuration(t, res.ExpiresAt, session.ExpiresAt, time.Second)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		ut := setupUserTest(t)
		ut.repo.On("GetByEmail", mock.Anything, "test@example.com").Return(stored, nil).Once()

		_, err := ut.service.Login(context.Background(), &dto.LoginRequest{Email: "test@example.com", Password: "nope"})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		ut := setupUserTest(t)
		ut.repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, storage.ErrNotFound).Once()

		_, err := ut.service.Login(context.Background(), &dto.LoginRequest{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})
}

func TestUserService_Logout(t *testing.T) {
	ut := setupUserTest(t)
	ctx := context.Background()

	require.NoError(t, ut.service.Logout(ctx, hrSession))
	revoked, err := ut.revoker.IsRevoked(ctx, "hr-jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, ut.service.Logout(ctx, nil), services.ErrUnauthorized)
}

func TestUserService_Update(t *testing.T) {
	t.Run("Keeps Password When Omitted", func(t *testing.T) {
		ut := setupUserTest(t)
		ut.repo.On("GetByID", mock.Anything, int64(3)).Return(&models.User{ID: 3, PasswordHash: "old-hash"}, nil).Once()
		ut.repo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.PasswordHash == "old-hash" && u.Email == "new@example.com" && u.Role == models.RoleManager
		})).Return(&models.User{ID: 3, Email: "new@example.com"}, nil).Once()

		user, err := ut.service.Update(context.Background(), &dto.UpdateUserRequest{
			ID: 3, Name: "Renamed", Email: "New@example.com", Role: models.RoleManager,
		})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("Email Already Exists", func(t *testing.T) {
		ut := setupUserTest(t)
		ut.repo.On("GetByID", mock.Anything, int64(3)).Return(&models.User{ID: 3}, nil).Once()
		ut.repo.On("Update", mock.Anything, mock.Anything).Return(nil, storage.ErrDuplicateEmail).Once()

		_, err := ut.service.Update(context.Background(), &dto.UpdateUserRequest{ID: 3, Name: "A", Email: "a@b.co", Role: models.RoleHR})
		assert.ErrorIs(t, err, services.ErrConflict)
		assert.Contains(t, err.Error(), "Email already exists")
	})

	t.Run("Not Found", func(t *testing.T) {
		ut := setupUserTest(t)
		ut.repo.On("GetByID", mock.Anything, int64(9)).Return(nil, storage.ErrNotFound).Once()

		_, err := ut.service.Update(context.Background(), &dto.UpdateUserRequest{ID: 9})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	ut := setupUserTest(t)
	ctx := context.Background()
	ut.repo.On("Delete", mock.Anything, int64(5)).Return(nil).Once()

	assert.NoError(t, ut.service.Delete(ctx, adminSession, 5))
	assert.ErrorIs(t, ut.service.Delete(ctx, hrSession, 5), services.ErrForbidden)
	assert.ErrorIs(t, ut.service.Delete(ctx, adminSession, adminSession.UserID), services.ErrValidation)
}

func TestUserService_List(t *testing.T) {
	ut := setupUserTest(t)
	ut.repo.On("List", mock.Anything, storage.ListParams{Search: "ann", Limit: 10, Offset: 0}).
		Return([]models.User{{ID: 1}}, nil).Once()
	ut.repo.On("Count", mock.Anything, "ann").Return(1, nil).Once()

	page, err := ut.service.List(context.Background(), &dto.PaginationQuery{Search: "ann"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Nil(t, page.NextPage)
}
