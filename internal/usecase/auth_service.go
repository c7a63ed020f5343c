package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/cricket-league/internal/domain/user"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	IssueAccessToken(ctx context.Context, userID int64) (string, error)
}

type SignupInput struct {
	Username string
	Password string
	Email    string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginResult struct {
	UserID      int64
	AccessToken string
}

type AuthService struct {
	userRepo user.Repository
	tokens   TokenIssuer
	logger   *logging.Logger
}

func NewAuthService(userRepo user.Repository, tokens TokenIssuer, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Signup registers an administrator account. Passwords are stored as given.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Signup")
	defer span.End()

	candidate := user.User{
		Username: strings.TrimSpace(input.Username),
		Password: input.Password,
		Email:    strings.TrimSpace(input.Email),
		Role:     user.RoleAdmin,
	}
	if err := candidate.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	exists, err := s.userRepo.ExistsByUsernameOrEmail(ctx, candidate.Username, candidate.Email)
	if err != nil {
		recordSpanError(span, err)
		return user.User{}, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return user.User{}, fmt.Errorf("%w: username or email already exists", ErrConflict)
	}

	id, err := s.userRepo.Create(ctx, candidate)
	if errors.Is(err, user.ErrDuplicate) {
		return user.User{}, fmt.Errorf("%w: username or email already exists", ErrConflict)
	}
	if err != nil {
		recordSpanError(span, err)
		return user.User{}, fmt.Errorf("create user: %w", err)
	}
	candidate.ID = id

	s.logger.InfoContext(ctx, "admin account created", "user_id", id)
	return candidate, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (LoginResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return LoginResult{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	item, exists, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		recordSpanError(span, err)
		return LoginResult{}, fmt.Errorf("get user by username: %w", err)
	}
	if !exists || item.Password != input.Password {
		return LoginResult{}, fmt.Errorf("%w: incorrect username/password provided", ErrUnauthorized)
	}

	token, err := s.tokens.IssueAccessToken(ctx, item.ID)
	if err != nil {
		recordSpanError(span, err)
		return LoginResult{}, fmt.Errorf("issue access token: %w", err)
	}

	return LoginResult{
		UserID:      item.ID,
		AccessToken: token,
	}, nil
}
