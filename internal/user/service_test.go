package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Emersonn00/arevoapp/internal/auth"
)

const testSecret = "test-secret-key-12345"

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, name, email, passwordHash, role, phone string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, role, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) UpdateProfile(ctx context.Context, id, name, phone, wellnessProgram string) (*User, error) {
	args := m.Called(ctx, id, name, phone, wellnessProgram)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

const testUserID = "7f6f3c1a-9a0e-4d5b-8c2d-0e1f2a3b4c5d"

func TestRegister(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	repo.On("EmailExists", mock.Anything, "new@example.com").Return(false, nil)
	repo.On("Create", mock.Anything, "Maria", "new@example.com", mock.AnythingOfType("string"), "member", "+5585999990000").
		Return(&User{ID: testUserID, Name: "Maria", Email: "new@example.com", Role: "member"}, nil)

	user, access, refresh, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Maria",
		Email:    "new@example.com",
		Password: "password123",
		Phone:    "+5585999990000",
	})
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	repo.AssertExpectations(t)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	repo.On("EmailExists", mock.Anything, "taken@example.com").Return(true, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Maria",
		Email:    "taken@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&User{
		ID: testUserID, Email: "user@example.com", Role: "member", PasswordHash: hash,
	}, nil)

	user, access, refresh, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestLoginWrongPassword(t *testing.T) {
	hash, _ := auth.HashPassword("correct-horse")

	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	repo.On("FindByEmail", mock.Anything, "user@example.com").Return(&User{
		ID: testUserID, PasswordHash: hash,
	}, nil)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, errors.New("sql: no rows in result set"))

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	refreshToken, err := auth.GenerateRefreshToken(testUserID, "user@example.com", "member", testSecret)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, testUserID).Return(&User{
		ID: testUserID, Email: "user@example.com", Role: "member",
	}, nil)

	newAccess, user, err := svc.RefreshToken(context.Background(), refreshToken)
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)

	claims, err := auth.ValidateToken(newAccess, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	accessToken, err := auth.GenerateAccessToken(testUserID, "user@example.com", "member", testSecret)
	require.NoError(t, err)

	_, _, err = svc.RefreshToken(context.Background(), accessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidTokenType)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestGetByID(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	repo.On("FindByID", mock.Anything, testUserID).Return(&User{ID: testUserID}, nil)

	user, err := svc.GetByID(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Equal(t, testUserID, user.ID)
}

func TestGetByIDNotFound(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	repo.On("FindByID", mock.Anything, "missing").Return(nil, errors.New("sql: no rows in result set"))

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo := new(MockUserRepo)
	svc := NewService(repo, testSecret)

	repo.On("UpdateProfile", mock.Anything, testUserID, "Maria", "+5585999990000", "wellhub").
		Return(&User{ID: testUserID, Name: "Maria", WellnessProgram: "wellhub"}, nil)

	user, err := svc.UpdateProfile(context.Background(), testUserID, UpdateProfileRequest{
		Name:            "Maria",
		Phone:           "+5585999990000",
		WellnessProgram: "wellhub",
	})
	require.NoError(t, err)
	assert.Equal(t, "wellhub", user.WellnessProgram)
	repo.AssertExpectations(t)
}
