package employees

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_OrderAndPaging(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	for _, e := range []models.Employee{
		{ID: "3", FirstName: "Grace", LastName: "Hopper"},
		{ID: "1", FirstName: "Alan", LastName: "Turing"},
		{ID: "2", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "0", FirstName: "Ada", LastName: "Hopper"},
	} {
		_, err := r.Create(ctx, &e)
		require.NoError(t, err)
	}

	all, err := r.List(ctx, 0, 0)
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, e := range all {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"0", "3", "2", "1"}, ids)

	page, err := r.List(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "3", page[0].ID)
	assert.Equal(t, "2", page[1].ID)

	past, err := r.List(ctx, 10, 2)
	require.NoError(t, err)
	assert.NotNil(t, past)
	assert.Empty(t, past)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMemoryRepository_AssignsID(t *testing.T) {
	r := NewMemoryRepository()
	e, err := r.Create(context.Background(), &models.Employee{FirstName: "X", LastName: "Y"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
}
