package posts

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/ozyalhan/ozyblog/internal/common"
	"github.com/ozyalhan/ozyblog/internal/server/auth"
)

const titleMaxLen = 40

// Service provides the per-kind content operations. Three instances exist,
// one per Kind, all sharing this implementation.
//
// Create and Update require an authenticated session. Delete additionally
// requires ownership, but the check lives in the repository's query filter:
// deleting somebody else's post reports ErrNotFound. Update performs no
// ownership check at all.
type Service struct {
	repo Repository
	kind Kind
}

func NewService(repo Repository, kind Kind) *Service {
	return &Service{repo: repo, kind: kind}
}

// Kind returns the content kind this service manages.
func (s *Service) Kind() Kind {
	return s.kind
}

// Create validates the draft and persists it with the session's username as
// author. The publish date is assigned by the store at insert time.
func (s *Service) Create(ctx context.Context, identity auth.SessionIdentity, title, content string) (int64, error) {
	if !identity.Authenticated() {
		return 0, common.ErrNotAuthenticated
	}
	if err := validatePost(title, content); err != nil {
		return 0, err
	}

	post, err := s.repo.Create(ctx, &Post{
		Title:   title,
		Author:  identity.Username,
		Content: content,
	})
	if err != nil {
		return 0, err
	}

	return post.ID, nil
}

// Get returns the post with the given id to any visitor.
func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns every post of this kind across all authors.
func (s *Service) List(ctx context.Context) ([]*Post, error) {
	return s.repo.SelectAll(ctx)
}

// ListByAuthor returns the posts authored by username, for the dashboard.
func (s *Service) ListByAuthor(ctx context.Context, username string) ([]*Post, error) {
	return s.repo.SelectByAuthor(ctx, username)
}

// Update replaces title and content of an existing post. There is no
// ownership check here: any authenticated user can edit any post of this
// kind. The publish date is left untouched.
func (s *Service) Update(ctx context.Context, identity auth.SessionIdentity, id int64, title, content string) error {
	if !identity.Authenticated() {
		return common.ErrNotAuthenticated
	}
	if err := validatePost(title, content); err != nil {
		return err
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrNotFound
		}
		return err
	}

	return s.repo.Update(ctx, id, title, content)
}

// Delete removes the post if the session's user owns it. A post that does
// not exist and a post owned by someone else both come back as ErrNotFound.
func (s *Service) Delete(ctx context.Context, identity auth.SessionIdentity, id int64) error {
	if !identity.Authenticated() {
		return common.ErrNotAuthenticated
	}
	return s.repo.DeleteOwned(ctx, id, identity.Username)
}

// Search returns posts whose title contains keyword. An empty result is a
// normal outcome, not an error.
func (s *Service) Search(ctx context.Context, keyword string) ([]*Post, error) {
	return s.repo.SearchByTitle(ctx, keyword)
}

func validatePost(title, content string) error {
	if title == "" {
		return common.NewValidationError("title", "write a title please")
	}
	if utf8.RuneCountInString(title) > titleMaxLen {
		return common.NewValidationError("title", "maximum 40 characters")
	}
	if content == "" {
		return common.NewValidationError("content", "write something please")
	}
	return nil
}
