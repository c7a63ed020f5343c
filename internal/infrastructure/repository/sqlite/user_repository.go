package sqlite

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/cricket-league/internal/domain/user"
	qb "github.com/riskibarqy/cricket-league/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (int64, error) {
	role := u.Role
	if role == "" {
		role = user.RoleGuest
	}

	query, args, err := qb.InsertModel("users", userTableModel{
		Username: u.Username,
		Password: u.Password,
		Email:    u.Email,
		Role:     string(role),
	}, "")
	if err != nil {
		return 0, crerr.Wrap(err, "build insert user query")
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, crerr.WithStack(user.ErrDuplicate)
		}
		return 0, crerr.Wrap(err, "insert user")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, crerr.Wrap(err, "read user id")
	}
	return id, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").
		Where(qb.Eq("username", username)).
		ToSQL()
	if err != nil {
		return user.User{}, false, crerr.Wrap(err, "build get user by username query")
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, crerr.Wrap(err, "get user by username")
	}

	return user.User{
		ID:       row.ID,
		Username: row.Username,
		Password: row.Password,
		Email:    row.Email,
		Role:     user.Role(row.Role),
	}, true, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query, args, err := qb.Select("id").From("users").
		Where(qb.Or(qb.Eq("username", username), qb.Eq("email", email))).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, crerr.Wrap(err, "build user exists query")
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, crerr.Wrap(err, "check user exists")
	}

	return true, nil
}
