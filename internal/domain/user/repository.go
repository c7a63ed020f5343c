package user

import "context"

// Repository describes user persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, u User) (int64, error)
	GetByUsername(ctx context.Context, username string) (User, bool, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}
