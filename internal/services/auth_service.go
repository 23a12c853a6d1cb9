package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"renthub/internal/common"
	"renthub/internal/middleware"
	"renthub/internal/models"
	"renthub/internal/repositories"
)

// SignupInput is the account-creation payload. Landlord signups implicitly
// start the membership trial.
type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.Role
}

// AuthService handles signup, login, and JWT issuance.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)

	// Profile returns the account behind an authenticated session.
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type authService struct {
	userRepo        repositories.UserRepository
	subscriptionSvc SubscriptionService
	jwtSecret       []byte
	tokenTTL        time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	subscriptionSvc SubscriptionService,
	jwtSecret string,
	tokenTTL time.Duration,
) AuthService {
	return &authService{
		userRepo:        userRepo,
		subscriptionSvc: subscriptionSvc,
		jwtSecret:       []byte(jwtSecret),
		tokenTTL:        tokenTTL,
	}
}

func (s *authService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := common.ValidateRequiredString(input.Email, "email"); err != nil {
		return nil, err
	}
	if len(input.Password) < 8 {
		return nil, common.NewValidationError("password", "must be at least 8 characters")
	}
	// Only landlord and tenant accounts self-register.
	if input.Role != models.RoleLandlord && input.Role != models.RoleTenant {
		return nil, common.NewValidationError("role", "must be LANDLORD or TENANT")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Landlord onboarding starts the trial window.
	if input.Role == models.RoleLandlord {
		if _, err := s.subscriptionSvc.StartTrial(ctx, user.ID); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Wrong email and wrong password are indistinguishable.
		return "", nil, common.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, common.ErrUnauthorized
	}

	now := time.Now()
	claims := middleware.JWTCustomClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "renthub-auth",
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign JWT: %w", err)
	}

	return signed, user, nil
}
