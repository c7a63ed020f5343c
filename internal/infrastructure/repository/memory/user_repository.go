package memory

import (
	"context"

	"github.com/riskibarqy/cricket-league/internal/domain/user"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(_ context.Context, u user.User) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.existsLocked(u.Username, u.Email) {
		return 0, user.ErrDuplicate
	}
	if u.Role == "" {
		u.Role = user.RoleGuest
	}

	u.ID = int64(len(r.store.users)) + 1
	r.store.users = append(r.store.users, u)
	return u.ID, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (user.User, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, item := range r.store.users {
		if item.Username == username {
			return item, true, nil
		}
	}

	return user.User{}, false, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.existsLocked(username, email), nil
}

func (r *UserRepository) existsLocked(username, email string) bool {
	for _, item := range r.store.users {
		if item.Username == username || item.Email == email {
			return true
		}
	}
	return false
}
