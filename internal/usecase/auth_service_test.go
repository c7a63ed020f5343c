package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cricket-league/internal/domain/user"
	"github.com/riskibarqy/cricket-league/internal/infrastructure/repository/memory"
	usermock "github.com/riskibarqy/cricket-league/internal/mocks/domain/user"
	"github.com/riskibarqy/cricket-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

type staticTokenIssuer struct {
	token string
	err   error
	calls []int64
}

func (s *staticTokenIssuer) IssueAccessToken(_ context.Context, userID int64) (string, error) {
	s.calls = append(s.calls, userID)
	return s.token, s.err
}

func TestAuthService_SignupThenLogin(t *testing.T) {
	store := memory.NewStore()
	tokens := &staticTokenIssuer{token: "signed-token"}
	service := NewAuthService(memory.NewUserRepository(store), tokens, logging.NewNop())

	created, err := service.Signup(t.Context(), SignupInput{Username: "alice", Password: "pw1", Email: "a@x.io"})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if created.ID != 1 {
		t.Fatalf("expected user id 1, got %d", created.ID)
	}
	if created.Role != user.RoleAdmin {
		t.Fatalf("expected admin role, got %q", created.Role)
	}

	result, err := service.Login(t.Context(), LoginInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.UserID != created.ID || result.AccessToken != "signed-token" {
		t.Fatalf("unexpected login result: %+v", result)
	}
	if len(tokens.calls) != 1 || tokens.calls[0] != created.ID {
		t.Fatalf("expected token issued for user %d, got %v", created.ID, tokens.calls)
	}
}

func TestAuthService_SignupDuplicate(t *testing.T) {
	service := NewAuthService(memory.NewUserRepository(memory.NewStore()), &staticTokenIssuer{}, logging.NewNop())

	if _, err := service.Signup(t.Context(), SignupInput{Username: "alice", Password: "pw", Email: "a@x.io"}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := service.Signup(t.Context(), SignupInput{Username: "alice", Password: "other", Email: "new@x.io"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate username, got %v", err)
	}
	_, err = service.Signup(t.Context(), SignupInput{Username: "bob", Password: "other", Email: "a@x.io"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict for duplicate email, got %v", err)
	}
}

func TestAuthService_SignupMissingFields(t *testing.T) {
	service := NewAuthService(memory.NewUserRepository(memory.NewStore()), &staticTokenIssuer{}, logging.NewNop())

	_, err := service.Signup(t.Context(), SignupInput{Username: "alice", Email: "a@x.io"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	tokens := &staticTokenIssuer{token: "never"}
	service := NewAuthService(memory.NewUserRepository(memory.NewStore()), tokens, logging.NewNop())

	if _, err := service.Signup(t.Context(), SignupInput{Username: "alice", Password: "pw", Email: "a@x.io"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	cases := []LoginInput{
		{Username: "alice", Password: "wrong"},
		{Username: "nobody", Password: "pw"},
	}
	for _, input := range cases {
		if _, err := service.Login(t.Context(), input); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("login %+v: expected ErrUnauthorized, got %v", input, err)
		}
	}
	if len(tokens.calls) != 0 {
		t.Fatalf("expected no tokens issued, got %v", tokens.calls)
	}

	if _, err := service.Login(t.Context(), LoginInput{Username: "alice"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing password, got %v", err)
	}
}

func TestAuthService_SignupConcurrentDuplicateUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userRepo := usermock.NewRepository(t)
	service := NewAuthService(userRepo, &staticTokenIssuer{}, logging.NewNop())

	userRepo.
		On("ExistsByUsernameOrEmail", ctx, "alice", "a@x.io").
		Return(false, nil).
		Once()
	userRepo.
		On("Create", ctx, mock.MatchedBy(func(u user.User) bool { return u.Username == "alice" && u.Role == user.RoleAdmin })).
		Return(int64(0), user.ErrDuplicate).
		Once()

	_, err := service.Signup(ctx, SignupInput{Username: "alice", Password: "pw", Email: "a@x.io"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}
