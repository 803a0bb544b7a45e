package services_test

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"watchly/internal/models"
	"watchly/internal/repositories"
	"watchly/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_Signup(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Successful signup returns a token bound to the new user's ID.
	mockRepo.On("GetByEmail", "test@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Run(func(args mock.Arguments) {
		user := args.Get(0).(*models.User)
		user.ID = "user-123"
		// Password must already be hashed when it reaches the repo.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
	}).Return(nil).Once()

	token, err := authService.Signup("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims := parseClaims(t, token, testJWTSecret)
	assert.Equal(t, "user-123", claims["user_id"])
	mockRepo.AssertExpectations(t)

	// Signup with an already registered email fails regardless of password.
	mockRepo.On("GetByEmail", "test@example.com").Return(&models.User{ID: "user-123"}, nil).Once()
	_, err = authService.Signup("test@example.com", "anotherpassword")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &models.User{
		ID:       "user-123",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	// Successful login
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	token, err := authService.Login("test@example.com", "password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims := parseClaims(t, token, testJWTSecret)
	assert.Equal(t, user.ID, claims["user_id"])
	mockRepo.AssertExpectations(t)

	// Wrong password
	mockRepo.On("GetByEmail", user.Email).Return(user, nil).Once()
	_, errWrongPassword := authService.Login("test@example.com", "wrongpassword")
	assert.ErrorIs(t, errWrongPassword, services.ErrInvalidCredentials)

	// Unknown email
	mockRepo.On("GetByEmail", "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, errUnknownEmail := authService.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, errUnknownEmail, services.ErrInvalidCredentials)

	// Both failure causes report identically.
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_StoreFailuresAreNotCredentialFailures(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, "test_jwt_secret")

	storeErr := fmt.Errorf("failed to get user by email x@y.com: connection refused")

	// A broken store during login surfaces as a server fault, not as
	// a credential rejection.
	mockRepo.On("GetByEmail", "x@y.com").Return(nil, storeErr).Once()
	_, err := authService.Login("x@y.com", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrInvalidCredentials)

	// Same during signup: the conflict error is reserved for an
	// actual existing account.
	mockRepo.On("GetByEmail", "x@y.com").Return(nil, storeErr).Once()
	_, err = authService.Signup("x@y.com", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	testJWTSecret := "test_jwt_secret"
	authService := services.NewAuthService(mockRepo, testJWTSecret)

	// Valid token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	})
	validTokenString, _ := token.SignedString([]byte(testJWTSecret))

	userID, err := authService.ValidateToken(validTokenString)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	// Malformed token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Expired token
	expiredToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	expiredTokenString, _ := expiredToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(expiredTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Token signed with a different secret
	forgedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "user-123",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	forgedTokenString, _ := forgedToken.SignedString([]byte("other_secret"))
	_, err = authService.ValidateToken(forgedTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Token without a user_id claim
	emptyToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	emptyTokenString, _ := emptyToken.SignedString([]byte(testJWTSecret))
	_, err = authService.ValidateToken(emptyTokenString)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

// parseClaims decodes a signed token for assertions.
func parseClaims(t *testing.T, tokenString, secret string) jwt.MapClaims {
	t.Helper()
	parsedToken, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	assert.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	return claims
}
