package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/staffview/internal/logging"
	"github.com/dmitrijs2005/staffview/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_SeedsEmptyStoreOnce(t *testing.T) {
	ctx := context.Background()
	auth, m, _ := newTestAuth(t)
	seeder := NewSeeder(m, auth, logging.Nop{})

	require.NoError(t, seeder.Seed(ctx))
	require.NoError(t, seeder.Seed(ctx))

	users, err := m.Users().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, users)

	employees, err := m.Employees().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(demoEmployees), employees)

	for _, e := range demoEmployees {
		assert.Empty(t, e.ID, "demo template must stay untouched")
	}

	_, _, err = auth.Login(ctx, DemoEmail, DemoPassword)
	require.NoError(t, err)
}

func TestSeeder_SkipsPopulatedEmployees(t *testing.T) {
	ctx := context.Background()
	auth, m, _ := newTestAuth(t)

	_, err := m.Employees().Create(ctx, &models.Employee{FirstName: "Only", LastName: "One"})
	require.NoError(t, err)

	require.NoError(t, NewSeeder(m, auth, logging.Nop{}).Seed(ctx))

	n, err := m.Employees().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
