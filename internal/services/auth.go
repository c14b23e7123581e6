package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mediatrack/media-watchlist/internal/jwt"
	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/models"
	"github.com/mediatrack/media-watchlist/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrValidation           = errors.New("validation failed")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
}

// Tokener defines the token operations used by the auth service.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login and token resolution.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    Tokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt Tokener) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user and issues a token for immediate use.
// The username match is case-sensitive and exact.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrValidation
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, "", err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		// A concurrent registration of the same username loses here.
		if errors.Is(err, repositories.ErrUsernameExists) {
			return nil, "", ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user and returns a session token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	// A malformed stored hash also reports as a non-match.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Resolve verifies a token and loads its owning user. Invalid and expired
// tokens, and subjects that no longer resolve to a user, all surface as the
// same authentication failure; the distinction is logged only.
func (svc *AuthService) Resolve(ctx context.Context, tokenString string) (*models.UserDB, error) {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		logger.Log.Infow("token rejected", "reason", err)
		return nil, ErrAuthenticationFailed
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load token subject", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("token subject no longer exists", "user_id", claims.UserID)
		return nil, ErrAuthenticationFailed
	}

	return user, nil
}
