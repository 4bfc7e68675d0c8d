package repositories

import (
	"context"

	"github.com/cardswap/matchmaker/internal/domain/logger"
	"github.com/cardswap/matchmaker/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type UserRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Usernames(ctx context.Context, ids []int64) (map[int64]string, error)
}

type userRepository struct {
	*BaseRepository
}

func NewUserRepository(db *bun.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository(db)}
}

func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ql := logger.NewQueryLogger("users", "Exists", id)
	ctx, cancel := r.WithTimeout(ctx)
	defer cancel()

	exists, err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("id = ?", id).
		Exists(ctx)
	return exists, ql.Done(r.HandleError("exists", "user", id, err), 1)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ql := logger.NewQueryLogger("users", "GetByID", id)
	user := new(models.User)
	err := r.SelectWithTimeout(ctx, "get", "user", func(ctx context.Context) error {
		return r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	})
	if IsNotFound(err) {
		err = &NotFoundError{Entity: "user", ID: id}
	}
	if err := ql.Done(err, 1); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ql := logger.NewQueryLogger("users", "GetByUsername", username)
	user := new(models.User)
	err := r.SelectWithTimeout(ctx, "get", "user", func(ctx context.Context) error {
		return r.db.NewSelect().Model(user).Where("lower(username) = lower(?)", username).Scan(ctx)
	})
	if IsNotFound(err) {
		err = &NotFoundError{Entity: "user", ID: username}
	}
	if err := ql.Done(err, 1); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	ql := logger.NewQueryLogger("users", "GetAll")
	var users []*models.User
	err := r.SelectWithTimeout(ctx, "list", "user", func(ctx context.Context) error {
		return r.db.NewSelect().Model(&users).Order("id ASC").Scan(ctx)
	})
	return users, ql.Done(err, len(users))
}

func (r *userRepository) Usernames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	ql := logger.NewQueryLogger("users", "Usernames", len(ids))
	var users []*models.User
	err := r.SelectWithTimeout(ctx, "list", "user", func(ctx context.Context) error {
		return r.db.NewSelect().
			Model(&users).
			Column("id", "username").
			Where("id IN (?)", bun.In(ids)).
			Scan(ctx)
	})
	if err := ql.Done(err, len(users)); err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}
