package service

import (
	"context"
	"testing"
	"time"

	"github.com/Praful-John2409/BookTable/internal/domain"
	"github.com/Praful-John2409/BookTable/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func TestAuthService_Register_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	var created *domain.User
	userRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) {
			created = user
		}).
		Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     "alice@example.com",
		Password:  "correct horse",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEmpty(t, user.ID)
	require.NotNil(t, created)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct horse")))
}

func TestAuthService_Register_Validation(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	cases := []struct {
		name  string
		input domain.RegisterInput
	}{
		{
			name:  "missing names",
			input: domain.RegisterInput{Email: "alice@example.com", Password: "long enough"},
		},
		{
			name: "bad email",
			input: domain.RegisterInput{
				FirstName: "Alice", LastName: "Nguyen", Email: "not-an-email", Password: "long enough",
			},
		},
		{
			name: "short password",
			input: domain.RegisterInput{
				FirstName: "Alice", LastName: "Nguyen", Email: "alice@example.com", Password: "short",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     "alice@example.com",
		Password:  "long enough",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func testUser(t *testing.T, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           "u1",
		FirstName:    "Alice",
		LastName:     "Nguyen",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	user := testUser(t, "correct horse")
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	token, got, err := svc.Login(context.Background(), "alice@example.com", "correct horse")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "u1", got.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	user := testUser(t, "correct horse")
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	user := testUser(t, "correct horse")
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	token, _, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, domain.RoleCustomer, got.Role)
}

func TestAuthService_Authenticate_BadToken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	_, err := svc.Authenticate(context.Background(), "not.a.token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_WrongSecret(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	issuer := NewAuthService(userRepo, "other-secret", time.Hour)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	user := testUser(t, "correct horse")
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	token, _, err := issuer.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_Expired(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, -time.Hour)

	user := testUser(t, "correct horse")
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)

	token, _, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_Authenticate_UserDeleted(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewAuthService(userRepo, testSecret, time.Hour)

	user := testUser(t, "correct horse")
	userRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(user, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	token, _, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
