package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"booking-console/internal/data/entity"
	"booking-console/internal/data/repository"
	"booking-console/internal/dto/request"
	"booking-console/pkg/utils"

	"go.uber.org/zap"
)

func newAuthService(userRepo *mockUserRepo, sessionRepo *mockSessionRepo) AuthService {
	repo := &repository.Repository{User: userRepo, Session: sessionRepo}
	return NewAuthService(repo, zap.NewNop())
}

func activeUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		Base:         entity.Base{ID: uuid.New()},
		FirstName:    "Asha",
		LastName:     "Gurung",
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleAgent,
		IsActive:     true,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := activeUser(t, "asha@example.com", "s3cret-pass")

	userRepo := new(mockUserRepo)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	sessionRepo := new(mockSessionRepo)
	sessionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
		return s.UserID == user.ID && s.ExpiresAt.After(s.CreatedAt)
	})).Return(nil)

	svc := newAuthService(userRepo, sessionRepo)
	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), resp.UserID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleAgent, resp.Role)
	sessionRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := activeUser(t, "asha@example.com", "right-pass")

	userRepo := new(mockUserRepo)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	svc := newAuthService(userRepo, new(mockSessionRepo))
	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-pass",
	})

	assert.ErrorContains(t, err, "invalid credentials")
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	svc := newAuthService(userRepo, new(mockSessionRepo))
	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})

	assert.ErrorContains(t, err, "invalid credentials")
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	user := activeUser(t, "asha@example.com", "s3cret-pass")
	user.IsActive = false

	userRepo := new(mockUserRepo)
	userRepo.On("FindByEmail", mock.Anything, "asha@example.com").Return(user, nil)

	svc := newAuthService(userRepo, new(mockSessionRepo))
	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorContains(t, err, "deactivated")
}

func TestAuthService_Logout(t *testing.T) {
	token := uuid.New()

	sessionRepo := new(mockSessionRepo)
	sessionRepo.On("Revoke", mock.Anything, token.String()).Return(nil)

	svc := newAuthService(new(mockUserRepo), sessionRepo)
	require.NoError(t, svc.Logout(context.Background(), token.String()))

	assert.ErrorContains(t, svc.Logout(context.Background(), "not-a-uuid"), "invalid token format")
	sessionRepo.AssertExpectations(t)
}
