package comments_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-press/inkwell/internal/comments"
	"github.com/inkwell-press/inkwell/internal/shared"
)

type stubRepo struct {
	items map[string]comments.Comment
}

func newStubRepo(items ...comments.Comment) *stubRepo {
	s := &stubRepo{items: make(map[string]comments.Comment)}
	for _, c := range items {
		s.items[c.ID] = c
	}
	return s
}

func (s *stubRepo) Create(_ context.Context, c comments.Comment) (comments.Comment, error) {
	if c.ArticleID == "missing-article" {
		return comments.Comment{}, shared.ErrNotFound
	}
	c.ID = "c-new"
	s.items[c.ID] = c
	return c, nil
}

func (s *stubRepo) ListByArticle(_ context.Context, articleID string) ([]comments.Comment, error) {
	var out []comments.Comment
	for _, c := range s.items {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id string) (comments.Comment, error) {
	c, ok := s.items[id]
	if !ok {
		return comments.Comment{}, shared.ErrNotFound
	}
	return c, nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

var _ comments.Repository = (*stubRepo)(nil)

var (
	admin  = &shared.Principal{ID: "admin-1", Role: shared.RoleAdmin}
	reader = &shared.Principal{ID: "reader-1", Role: 0}
	other  = &shared.Principal{ID: "reader-2", Role: 0}
)

func TestCreateStampsAuthor(t *testing.T) {
	service := comments.NewService(newStubRepo())

	created, err := service.Create(context.Background(), reader, comments.Comment{
		ArticleID: "a1",
		Body:      "nice read",
	})
	require.NoError(t, err)
	assert.Equal(t, "reader-1", created.UserID)

	_, err = service.Create(context.Background(), nil, comments.Comment{ArticleID: "a1"})
	assert.ErrorIs(t, err, shared.ErrUnauthenticated)
}

func TestCreateOnMissingArticle(t *testing.T) {
	service := comments.NewService(newStubRepo())

	_, err := service.Create(context.Background(), reader, comments.Comment{
		ArticleID: "missing-article",
		Body:      "into the void",
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteOwnership(t *testing.T) {
	repo := newStubRepo(
		comments.Comment{ID: "c1", ArticleID: "a1", UserID: "reader-1"},
		comments.Comment{ID: "c2", ArticleID: "a1", UserID: "reader-2"},
	)
	service := comments.NewService(repo)

	err := service.Delete(context.Background(), other, "c1")
	assert.ErrorIs(t, err, shared.ErrForbidden)

	require.NoError(t, service.Delete(context.Background(), reader, "c1"))
	require.NoError(t, service.Delete(context.Background(), admin, "c2"))
	assert.Empty(t, repo.items)
}

func TestListByArticle(t *testing.T) {
	repo := newStubRepo(
		comments.Comment{ID: "c1", ArticleID: "a1", UserID: "reader-1"},
		comments.Comment{ID: "c2", ArticleID: "a2", UserID: "reader-2"},
	)
	service := comments.NewService(repo)

	list, err := service.ListByArticle(context.Background(), "a1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)
}
