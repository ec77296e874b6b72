package repository

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-juicebar-service/internal/customer/dto"
	"github.com/fekuna/omnipos-juicebar-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T) *MemoryRepository {
	t.Helper()
	repo := NewMemoryRepository()
	for _, c := range []model.Customer{
		{BaseModel: model.BaseModel{ID: "C1"}, Name: "Asha", Phone: "+91 9000000001"},
		{BaseModel: model.BaseModel{ID: "C2"}, Name: "Walk-in"},
		{BaseModel: model.BaseModel{ID: "C3"}, Name: "Ravi", Phone: "+91 9000000003"},
	} {
		c := c
		require.NoError(t, repo.Save(context.Background(), &c))
	}
	return repo
}

func TestFindAll_Filters(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	withPhone := true
	list, total, err := repo.FindAll(ctx, &dto.CustomerFilters{HasContact: &withPhone})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "C1", list[0].ID)

	list, total, err = repo.FindAll(ctx, &dto.CustomerFilters{SearchQuery: "RAVI"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "C3", list[0].ID)

	_, total, err = repo.FindAll(ctx, &dto.CustomerFilters{SearchQuery: "900000000"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestFindAll_Paging(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	page, total, err := repo.FindAll(ctx, &dto.CustomerFilters{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "C3", page[0].ID)

	page, total, err = repo.FindAll(ctx, &dto.CustomerFilters{Page: 5, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestDelete(t *testing.T) {
	repo := seeded(t)
	ctx := context.Background()

	require.NoError(t, repo.Delete(ctx, "C2"))
	require.NoError(t, repo.Delete(ctx, "C404"))

	got, err := repo.FindByID(ctx, "C2")
	require.NoError(t, err)
	assert.Nil(t, got)

	list, total, err := repo.FindAll(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, "C3", list[1].ID)
}
