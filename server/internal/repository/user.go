package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"

	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, req model.CreateUserRequest) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("name", "email").
		Values(req.Name, req.Email).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrEmailAlreadyInUse
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) ListUsers(ctx context.Context) ([]model.User, error) {
	q, args, err := qb.Select("id", "name", "email").
		From(usersTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0)
	if err := r.db.SelectContext(ctx, &users, q, args...); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) GetUser(ctx context.Context, id int64) (model.User, error) {
	q, args, err := qb.Select("id", "name", "email").
		From(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) UpdateUser(ctx context.Context, id int64, upd model.UpdateUserRequest) (model.User, error) {
	if upd.Name == nil && upd.Email == nil {
		return r.GetUser(ctx, id)
	}
	b := qb.Update(usersTableName).
		Where(sq.Eq{"id": id}).
		Suffix("returning *")
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Email != nil {
		b = b.Set("email", *upd.Email)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, errs.ErrUserNotFound
		}
		if isUniqueViolation(err) {
			return model.User{}, errs.ErrEmailAlreadyInUse
		}
		return model.User{}, err
	}
	return user, nil
}

func (r *repository) DeleteUser(ctx context.Context, id int64) error {
	q, args, err := qb.Delete(usersTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
