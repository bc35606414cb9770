package posts

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozyalhan/ozyblog/internal/common"
	"github.com/ozyalhan/ozyblog/internal/server/auth"
)

type fakePostRepo struct {
	posts  map[int64]*Post
	nextID int64
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*Post), nextID: 1}
}

func (f *fakePostRepo) Create(_ context.Context, post *Post) (*Post, error) {
	post.ID = f.nextID
	post.PublishDate = time.Now()
	f.nextID++
	stored := *post
	f.posts[post.ID] = &stored
	return post, nil
}

func (f *fakePostRepo) GetByID(_ context.Context, id int64) (*Post, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (f *fakePostRepo) SelectAll(_ context.Context) ([]*Post, error) {
	var result []*Post
	for id := int64(1); id < f.nextID; id++ {
		if p, ok := f.posts[id]; ok {
			copy := *p
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakePostRepo) SelectByAuthor(ctx context.Context, author string) ([]*Post, error) {
	all, _ := f.SelectAll(ctx)
	var result []*Post
	for _, p := range all {
		if p.Author == author {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePostRepo) Update(_ context.Context, id int64, title, content string) error {
	p, ok := f.posts[id]
	if !ok {
		return common.ErrNotFound
	}
	p.Title = title
	p.Content = content
	return nil
}

func (f *fakePostRepo) DeleteOwned(_ context.Context, id int64, author string) error {
	p, ok := f.posts[id]
	if !ok || p.Author != author {
		return common.ErrNotFound
	}
	delete(f.posts, id)
	return nil
}

func (f *fakePostRepo) SearchByTitle(ctx context.Context, keyword string) ([]*Post, error) {
	all, _ := f.SelectAll(ctx)
	var result []*Post
	for _, p := range all {
		if strings.Contains(p.Title, keyword) {
			result = append(result, p)
		}
	}
	return result, nil
}

var (
	ozgur = auth.SessionIdentity{Username: "ozgur"}
	guest = auth.SessionIdentity{Username: "guest"}
)

func TestCreate_RequiresAuthentication(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)

	_, err := svc.Create(context.Background(), auth.Anonymous, "Title", "content")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestCreate_ThenRead(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)

	id, err := svc.Create(context.Background(), ozgur, "My First Post", "hello world")
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "My First Post", got.Title)
	assert.Equal(t, "hello world", got.Content)
	assert.Equal(t, "ozgur", got.Author)
	assert.False(t, got.PublishDate.IsZero())
}

func TestCreate_TitleLengthBoundary(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)
	ctx := context.Background()

	_, err := svc.Create(ctx, ozgur, strings.Repeat("a", 40), "content")
	assert.NoError(t, err)

	_, err = svc.Create(ctx, ozgur, strings.Repeat("a", 41), "content")
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
}

func TestCreate_TitleLengthCountsCharactersNotBytes(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)
	ctx := context.Background()

	// 40 two-byte characters must fit the 40-character limit
	_, err := svc.Create(ctx, ozgur, strings.Repeat("ğ", 40), "content")
	assert.NoError(t, err)

	_, err = svc.Create(ctx, ozgur, strings.Repeat("ğ", 41), "content")
	require.Error(t, err)
	assert.True(t, common.IsValidation(err))
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		content string
	}{
		{"empty title", "", "content"},
		{"empty content", "Title", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, ozgur, tc.title, tc.content)
			require.Error(t, err)
			assert.True(t, common.IsValidation(err))
		})
	}
}

func TestUpdate_MissingPost(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)

	err := svc.Update(context.Background(), ozgur, 42, "Title", "content")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestUpdate_AnyAuthenticatedUserCanEdit(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewService(repo, KindBlog)
	ctx := context.Background()

	id, err := svc.Create(ctx, ozgur, "Original", "original content")
	require.NoError(t, err)

	// editing is only gated on authentication, not ownership
	err = svc.Update(ctx, guest, id, "Hijacked", "rewritten")
	require.NoError(t, err)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hijacked", got.Title)
	assert.Equal(t, "ozgur", got.Author, "author does not change on edit")
}

func TestUpdate_RequiresAuthentication(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)

	err := svc.Update(context.Background(), auth.Anonymous, 1, "Title", "content")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestDelete_ByOwner(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)
	ctx := context.Background()

	id, err := svc.Create(ctx, ozgur, "Ephemeral", "content")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, ozgur, id))

	_, err = svc.Get(ctx, id)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_NonOwnerReportsNotFound(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)
	ctx := context.Background()

	id, err := svc.Create(ctx, ozgur, "Protected", "content")
	require.NoError(t, err)

	// a non-owner's delete filters to zero rows and reads as not found
	err = svc.Delete(ctx, guest, id)
	assert.ErrorIs(t, err, common.ErrNotFound)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Protected", got.Title)
}

func TestDelete_RequiresAuthentication(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)

	err := svc.Delete(context.Background(), auth.Anonymous, 1)
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestSearch_TitleSubstring(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)
	ctx := context.Background()

	_, err := svc.Create(ctx, ozgur, "FooBar", "one")
	require.NoError(t, err)
	_, err = svc.Create(ctx, ozgur, "xFoox", "two")
	require.NoError(t, err)
	_, err = svc.Create(ctx, ozgur, "bar", "content mentions Foo but titles decide")
	require.NoError(t, err)

	got, err := svc.Search(ctx, "Foo")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "FooBar", got[0].Title)
	assert.Equal(t, "xFoox", got[1].Title)
}

func TestSearch_NoMatches(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindBlog)

	got, err := svc.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListByAuthor(t *testing.T) {
	svc := NewService(newFakePostRepo(), KindDiary)
	ctx := context.Background()

	_, err := svc.Create(ctx, ozgur, "Mine", "a")
	require.NoError(t, err)
	_, err = svc.Create(ctx, guest, "Theirs", "b")
	require.NoError(t, err)

	got, err := svc.ListByAuthor(ctx, "ozgur")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Mine", got[0].Title)
}
