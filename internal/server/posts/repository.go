package posts

import "context"

type Repository interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	SelectAll(ctx context.Context) ([]*Post, error)
	SelectByAuthor(ctx context.Context, author string) ([]*Post, error)
	Update(ctx context.Context, id int64, title, content string) error

	// DeleteOwned removes the post only when id and author both match, so a
	// non-owner's delete affects zero rows.
	DeleteOwned(ctx context.Context, id int64, author string) error

	SearchByTitle(ctx context.Context, keyword string) ([]*Post, error)
}
