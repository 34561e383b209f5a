package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/practicum/shareit-service/server/internal/model"
)

func (r *repository) CreateComment(ctx context.Context, itemID, authorID int64, text string) (model.Comment, error) {
	q := fmt.Sprintf(`
	with inserted as (
		insert into %s (text, item_id, author_id)
		values ($1, $2, $3)
		returning id, text, item_id, author_id, created
	)
	select c.id, c.text, c.item_id, c.author_id, c.created, u.name as author_name
	from inserted c
	join %s u on u.id = c.author_id`, commentsTableName, usersTableName)

	var comment model.Comment
	if err := r.db.GetContext(ctx, &comment, q, text, itemID, authorID); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

func (r *repository) ListCommentsOfItems(ctx context.Context, itemIDs []int64) ([]model.Comment, error) {
	if len(itemIDs) == 0 {
		return []model.Comment{}, nil
	}
	q, args, err := qb.Select("c.id", "c.text", "c.item_id", "c.author_id", "c.created", "u.name as author_name").
		From(commentsTableName + " c").
		Join(fmt.Sprintf("%s u on u.id = c.author_id", usersTableName)).
		Where(sq.Eq{"c.item_id": itemIDs}).
		OrderBy("c.created ASC").
		ToSql()
	if err != nil {
		return nil, err
	}
	comments := make([]model.Comment, 0)
	if err := r.db.SelectContext(ctx, &comments, q, args...); err != nil {
		return nil, err
	}
	return comments, nil
}
