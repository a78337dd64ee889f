package service

import (
	"context"
	"testing"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/db/pagination"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newCustomerService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Customer{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, db
}

func TestCreate_ReusesExistingEmail(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, domain.CreateRequest{
		Name:  "Amal B",
		Email: "amal@example.com",
		City:  "Casablanca",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, domain.CreateRequest{
		Name:  "Amal Renamed",
		Email: "  AMAL@example.com ",
		City:  "Rabat",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Amal B", second.Name)
	assert.Equal(t, "amal@example.com", second.Email)
}

func TestCreate_RejectsBadInput(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Email: "amal@example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidCustomer)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Amal", Email: "not-an-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestUpdate_NeverChangesEmail(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{
		Name:  "Amal B",
		Email: "amal@example.com",
	})
	require.NoError(t, err)

	city := "Marrakech"
	updated, err := svc.Update(ctx, created.ID.String(), domain.UpdateRequest{City: &city})
	require.NoError(t, err)

	assert.Equal(t, "Marrakech", updated.City)
	assert.Equal(t, "amal@example.com", updated.Email)
}

func TestList_CursorPagination(t *testing.T) {
	svc, db := newCustomerService(t)
	ctx := context.Background()

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for i, email := range emails {
		require.NoError(t, db.Create(&domain.Customer{
			ID:        node.Generate(),
			Name:      "Customer",
			Email:     email,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
			UpdatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	resp, err := svc.List(ctx, domain.ListRequest{PageSize: 2})
	require.NoError(t, err)

	assert.Len(t, resp.Customers, 2)
	assert.True(t, resp.HasMore)
	require.NotEmpty(t, resp.NextPageToken)

	cursor, err := pagination.DecodeCursor(resp.NextPageToken)
	require.NoError(t, err)
	assert.Equal(t, resp.Customers[len(resp.Customers)-1].ID.String(), cursor.ID)
}

func TestList_FiltersByEmail(t *testing.T) {
	svc, _ := newCustomerService(t)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.Create(ctx, domain.CreateRequest{Name: "Customer", Email: email})
		require.NoError(t, err)
	}

	resp, err := svc.List(ctx, domain.ListRequest{Email: "B@example.com"})
	require.NoError(t, err)

	require.Len(t, resp.Customers, 1)
	assert.Equal(t, "b@example.com", resp.Customers[0].Email)
	assert.False(t, resp.HasMore)
}
