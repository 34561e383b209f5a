package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/model"
)

func (r *repository) CreateItem(ctx context.Context, req model.CreateItemRequest, ownerID int64) (model.Item, error) {
	q, args, err := qb.Insert(itemsTableName).
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(req.Name, req.Description, *req.Available, ownerID, req.RequestID).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) GetItem(ctx context.Context, id int64) (model.Item, error) {
	q, args, err := qb.Select("id", "name", "description", "available", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotFound
		}
		return model.Item{}, err
	}
	return item, nil
}

// UpdateItem touches the item only when the caller owns it: a wrong owner
// yields no row, which is deliberately indistinguishable from a missing item.
func (r *repository) UpdateItem(ctx context.Context, itemID, ownerID int64, upd model.UpdateItemRequest) (model.Item, error) {
	if upd.Name == nil && upd.Description == nil && upd.Available == nil {
		return r.GetItem(ctx, itemID)
	}
	b := qb.Update(itemsTableName).
		Where(sq.Eq{"id": itemID}).
		Where(sq.Eq{"owner_id": ownerID}).
		Suffix("returning *")
	if upd.Name != nil {
		b = b.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		b = b.Set("description", *upd.Description)
	}
	if upd.Available != nil {
		b = b.Set("available", *upd.Available)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return model.Item{}, err
	}
	var item model.Item
	if err := r.db.GetContext(ctx, &item, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Item{}, errs.ErrItemNotBelongToUser
		}
		return model.Item{}, err
	}
	return item, nil
}

func (r *repository) ListItemsOfOwner(ctx context.Context, ownerID, page, size int64) ([]model.Item, error) {
	q, args, err := qb.Select("id", "name", "description", "available", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("id").
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) SearchItems(ctx context.Context, text string, page, size int64) ([]model.Item, error) {
	pattern := "%" + text + "%"
	q, args, err := qb.Select("id", "name", "description", "available", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"available": true}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("id").
		Limit(uint64(size)).
		Offset(uint64(page * size)).
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) OwnedItemIDs(ctx context.Context, ownerID int64) ([]int64, error) {
	q, args, err := qb.Select("id").
		From(itemsTableName).
		Where(sq.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0)
	if err := r.db.SelectContext(ctx, &ids, q, args...); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) ListItemsForRequests(ctx context.Context, requestIDs []int64) ([]model.Item, error) {
	if len(requestIDs) == 0 {
		return []model.Item{}, nil
	}
	q, args, err := qb.Select("id", "name", "description", "available", "owner_id", "request_id").
		From(itemsTableName).
		Where(sq.Eq{"request_id": requestIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
