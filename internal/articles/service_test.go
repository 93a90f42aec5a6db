package articles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-press/inkwell/internal/articles"
	"github.com/inkwell-press/inkwell/internal/shared"
)

type stubRepo struct {
	items       map[string]articles.Article
	lastFilters articles.ListFilters
	deleted     []string
}

func newStubRepo(items ...articles.Article) *stubRepo {
	s := &stubRepo{items: make(map[string]articles.Article)}
	for _, a := range items {
		s.items[a.ID] = a
	}
	return s
}

func (s *stubRepo) List(_ context.Context, filters articles.ListFilters) ([]articles.Article, int, error) {
	s.lastFilters = filters
	var out []articles.Article
	for _, a := range s.items {
		if filters.AuthorID != "" && a.AuthorID != filters.AuthorID {
			continue
		}
		out = append(out, a)
	}
	return out, len(out), nil
}

func (s *stubRepo) Get(_ context.Context, id string) (articles.Article, error) {
	a, ok := s.items[id]
	if !ok {
		return articles.Article{}, shared.ErrNotFound
	}
	return a, nil
}

func (s *stubRepo) Create(_ context.Context, a articles.Article) (articles.Article, error) {
	if a.ID == "" {
		a.ID = "art-" + a.Slug
	}
	s.items[a.ID] = a
	return a, nil
}

func (s *stubRepo) Update(_ context.Context, id string, a articles.Article) error {
	existing, ok := s.items[id]
	if !ok {
		return shared.ErrNotFound
	}
	existing.Title = a.Title
	existing.Slug = a.Slug
	existing.Body = a.Body
	existing.CategoryID = a.CategoryID
	s.items[id] = existing
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(s.items, id)
	s.deleted = append(s.deleted, id)
	return nil
}

var _ articles.Repository = (*stubRepo)(nil)

var (
	admin  = &shared.Principal{ID: "admin-1", Role: shared.RoleAdmin}
	writer = &shared.Principal{ID: "writer-1", Role: 0}
	other  = &shared.Principal{ID: "writer-2", Role: 0}
)

func fixtureRepo() *stubRepo {
	return newStubRepo(
		articles.Article{ID: "a1", Title: "First", Slug: "first", AuthorID: "writer-1"},
		articles.Article{ID: "a2", Title: "Second", Slug: "second", AuthorID: "writer-2"},
	)
}

func TestCreateStampsAuthorAndSlug(t *testing.T) {
	repo := newStubRepo()
	service := articles.NewService(repo)

	created, err := service.Create(context.Background(), writer, articles.Article{
		Title: "Hello, Wörld!",
		Body:  "body",
	})
	require.NoError(t, err)
	assert.Equal(t, "writer-1", created.AuthorID)
	assert.Equal(t, "hello-world", created.Slug)

	_, err = service.Create(context.Background(), nil, articles.Article{Title: "x"})
	assert.ErrorIs(t, err, shared.ErrUnauthenticated)
}

func TestListScopesNonAdminsToOwnArticles(t *testing.T) {
	repo := fixtureRepo()
	service := articles.NewService(repo)

	items, page, err := service.List(context.Background(), writer, articles.ListFilters{Page: 1, PerPage: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, "writer-1", repo.lastFilters.AuthorID)
	assert.Equal(t, 1, page.Total)
}

func TestListAdminSeesEverything(t *testing.T) {
	repo := fixtureRepo()
	service := articles.NewService(repo)

	items, _, err := service.List(context.Background(), admin, articles.ListFilters{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Empty(t, repo.lastFilters.AuthorID)
}

func TestUpdateOwnership(t *testing.T) {
	service := articles.NewService(fixtureRepo())
	draft := articles.Article{Title: "First Revised", Body: "new body"}

	updated, err := service.Update(context.Background(), writer, "a1", draft)
	require.NoError(t, err)
	assert.Equal(t, "first-revised", updated.Slug)

	_, err = service.Update(context.Background(), other, "a1", draft)
	assert.ErrorIs(t, err, shared.ErrForbidden)

	// Admins may rewrite anyone's article.
	_, err = service.Update(context.Background(), admin, "a1", draft)
	assert.NoError(t, err)
}

func TestDeleteOwnership(t *testing.T) {
	repo := fixtureRepo()
	service := articles.NewService(repo)

	err := service.Delete(context.Background(), other, "a1")
	assert.ErrorIs(t, err, shared.ErrForbidden)

	require.NoError(t, service.Delete(context.Background(), writer, "a1"))
	require.NoError(t, service.Delete(context.Background(), admin, "a2"))
	assert.Empty(t, repo.items)
}

func TestDeleteMissingArticle(t *testing.T) {
	service := articles.NewService(newStubRepo())
	assert.ErrorIs(t, service.Delete(context.Background(), admin, "nope"), shared.ErrNotFound)
}
