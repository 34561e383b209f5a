package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

func (r *repository) CreateRequest(ctx context.Context, requestorID int64, description string) (model.ItemRequest, error) {
	q, args, err := qb.Insert(itemRequestsTableName).
		Columns("description", "requestor_id").
		Values(description, requestorID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	var req model.ItemRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		return model.ItemRequest{}, err
	}
	return req, nil
}

func (r *repository) GetRequest(ctx context.Context, id int64) (model.ItemRequest, error) {
	q, args, err := qb.Select("id", "description", "requestor_id", "created").
		From(itemRequestsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.ItemRequest{}, err
	}
	var req model.ItemRequest
	if err := r.db.GetContext(ctx, &req, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ItemRequest{}, errs.ErrRequestNotFound
		}
		return model.ItemRequest{}, err
	}
	return req, nil
}

func (r *repository) ListRequestsOfUser(ctx context.Context, requestorID int64) ([]model.ItemRequest, error) {
	q, args, err := qb.Select("id", "description", "requestor_id", "created").
		From(itemRequestsTableName).
		Where(sq.Eq{"requestor_id": requestorID}).
		OrderBy("created DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	reqs := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &reqs, q, args...); err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *repository) ListRequestsOfOthers(ctx context.Context, requestorID, page, size int64) ([]model.ItemRequest, error) {
	q, args, err := qb.Select("id", "description", "requestor_id", "created").
		From(itemRequestsTableName).
		Where(sq.NotEq{"requestor_id": requestorID}).
		OrderBy("created DESC").
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	reqs := make([]model.ItemRequest, 0)
	if err := r.db.SelectContext(ctx, &reqs, q, args...); err != nil {
		return nil, err
	}
	return reqs, nil
}
