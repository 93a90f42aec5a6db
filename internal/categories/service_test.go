package categories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-press/inkwell/internal/categories"
	"github.com/inkwell-press/inkwell/internal/shared"
)

type stubRepo struct {
	items  map[string]categories.Category
	bySlug map[string]string
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		items:  make(map[string]categories.Category),
		bySlug: make(map[string]string),
	}
}

func (s *stubRepo) List(context.Context) ([]categories.Category, error) {
	out := make([]categories.Category, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubRepo) Get(_ context.Context, id string) (categories.Category, error) {
	c, ok := s.items[id]
	if !ok {
		return categories.Category{}, shared.ErrNotFound
	}
	return c, nil
}

func (s *stubRepo) Create(_ context.Context, c categories.Category) (categories.Category, error) {
	if _, ok := s.bySlug[c.Slug]; ok {
		return categories.Category{}, shared.ErrDuplicate
	}
	c.ID = "cat-" + c.Slug
	s.items[c.ID] = c
	s.bySlug[c.Slug] = c.ID
	return c, nil
}

func (s *stubRepo) Update(_ context.Context, id string, c categories.Category) error {
	existing, ok := s.items[id]
	if !ok {
		return shared.ErrNotFound
	}
	if owner, taken := s.bySlug[c.Slug]; taken && owner != id {
		return shared.ErrDuplicate
	}
	delete(s.bySlug, existing.Slug)
	existing.Name = c.Name
	existing.Slug = c.Slug
	s.items[id] = existing
	s.bySlug[c.Slug] = id
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	c, ok := s.items[id]
	if !ok {
		return shared.ErrNotFound
	}
	delete(s.bySlug, c.Slug)
	delete(s.items, id)
	return nil
}

var _ categories.Repository = (*stubRepo)(nil)

func TestCreateDerivesSlug(t *testing.T) {
	service := categories.NewService(newStubRepo())

	created, err := service.Create(context.Background(), categories.Category{Name: "Tech & Science"})
	require.NoError(t, err)
	assert.Equal(t, "tech-science", created.Slug)
}

func TestCreateDuplicateName(t *testing.T) {
	service := categories.NewService(newStubRepo())

	_, err := service.Create(context.Background(), categories.Category{Name: "General"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), categories.Category{Name: "General"})
	assert.ErrorIs(t, err, shared.ErrDuplicate)
}

func TestUpdateRenamesAndReslugs(t *testing.T) {
	service := categories.NewService(newStubRepo())

	created, err := service.Create(context.Background(), categories.Category{Name: "General"})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, categories.Category{Name: "Daily Notes"})
	require.NoError(t, err)
	assert.Equal(t, "Daily Notes", updated.Name)
	assert.Equal(t, "daily-notes", updated.Slug)
}

func TestUpdateMissingCategory(t *testing.T) {
	service := categories.NewService(newStubRepo())

	_, err := service.Update(context.Background(), "nope", categories.Category{Name: "X"})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
