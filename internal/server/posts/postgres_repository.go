// Package posts implements the content repository shared by blogs, diaries,
// and project write-ups: one Postgres repository parameterized by Kind,
// instantiated once per table.
package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ozyalhan/ozyblog/internal/common"
	"github.com/ozyalhan/ozyblog/internal/dbx"
)

// PostgresRepository implements post storage over a dbx.DBTX (*sql.DB or
// *sql.Tx) for a single content table. The table name comes from the Kind
// constant, never from user input.
type PostgresRepository struct {
	db    dbx.DBTX
	table string
}

// NewPostgresRepository constructs a repository bound to the given DBTX and
// the kind's backing table.
func NewPostgresRepository(db dbx.DBTX, kind Kind) *PostgresRepository {
	return &PostgresRepository{db: db, table: kind.Table()}
}

func (r *PostgresRepository) Create(ctx context.Context, post *Post) (*Post, error) {
	query := fmt.Sprintf(
		`INSERT INTO %s (title, author, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, publish_date
		 `, r.table)

	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Author, post.Content).Scan(&post.ID, &post.PublishDate)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Post, error) {
	query := fmt.Sprintf(
		`SELECT id, title, author, content, publish_date FROM %s
		 WHERE id = $1
		 `, r.table)

	post := &Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Author, &post.Content, &post.PublishDate)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return post, nil
}

func (r *PostgresRepository) SelectAll(ctx context.Context) ([]*Post, error) {
	query := fmt.Sprintf(
		`SELECT id, title, author, content, publish_date FROM %s
		 ORDER BY id
		 `, r.table)
	return r.selectMany(ctx, query)
}

func (r *PostgresRepository) SelectByAuthor(ctx context.Context, author string) ([]*Post, error) {
	query := fmt.Sprintf(
		`SELECT id, title, author, content, publish_date FROM %s
		 WHERE author = $1
		 ORDER BY id
		 `, r.table)
	return r.selectMany(ctx, query, author)
}

// Update rewrites title and content in place. The publish date is not
// touched. Missing rows report ErrNotFound.
func (r *PostgresRepository) Update(ctx context.Context, id int64, title, content string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET title = $1, content = $2
		 WHERE id = $3
		 `, r.table)

	res, err := r.db.ExecContext(ctx, query, title, content, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// DeleteOwned deletes the row matching both id and author. A post owned by
// someone else matches zero rows, which is indistinguishable from the post
// not existing.
func (r *PostgresRepository) DeleteOwned(ctx context.Context, id int64, author string) error {
	query := fmt.Sprintf(
		`DELETE FROM %s
		 WHERE id = $1 AND author = $2
		 `, r.table)

	res, err := r.db.ExecContext(ctx, query, id, author)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireOneRow(res)
}

// SearchByTitle matches the keyword as a substring of the title only, using
// the store's default (case-sensitive) collation.
func (r *PostgresRepository) SearchByTitle(ctx context.Context, keyword string) ([]*Post, error) {
	query := fmt.Sprintf(
		`SELECT id, title, author, content, publish_date FROM %s
		 WHERE title LIKE $1
		 ORDER BY id
		 `, r.table)
	return r.selectMany(ctx, query, "%"+keyword+"%")
}

func (r *PostgresRepository) selectMany(ctx context.Context, query string, args ...any) ([]*Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*Post
	for rows.Next() {
		var item Post
		if err := rows.Scan(&item.ID, &item.Title, &item.Author, &item.Content, &item.PublishDate); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func requireOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
