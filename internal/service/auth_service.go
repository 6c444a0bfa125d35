package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"formbuilder/internal/model"
	"formbuilder/internal/repository"
)

const tokenLifetime = 24 * time.Hour

// AuthService handles registration, login and bearer-token validation.
// The token carries only the opaque user id; everything downstream treats
// it as an owner reference.
type AuthService struct {
	userRepo  repository.UserRepo
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepo, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Register creates a user and returns a fresh token.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, &ValidationError{Violations: []string{"Email and password are required"}}
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{Email: email, PasswordHash: string(hash)}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.authResponse(user)
}

// Login validates credentials and returns a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *AuthService) authResponse(user *model.User) (*model.AuthResponse, error) {
	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{
		Token: token,
		User:  model.PublicUser{ID: user.ID, Email: user.Email},
	}, nil
}

// GenerateToken signs a user-scoped bearer token.
func (s *AuthService) GenerateToken(userID string) (string, error) {
	claims := &model.UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken parses a bearer token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
