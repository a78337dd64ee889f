package service

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	orderrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newOrderFixture(t *testing.T) (domain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}))

	fake := clock.NewFakeClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: fake,
		Repo:  orderrepository.Provide(),
	})
	return svc, db, fake
}

func seedOrder(t *testing.T, db *gorm.DB, status domain.Status) *domain.Order {
	t.Helper()

	node, err := snowflake.NewNode(2)
	require.NoError(t, err)

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	order := &domain.Order{
		ID:             node.Generate(),
		SubscriptionID: node.Generate(),
		CustomerID:     node.Generate(),
		Currency:       "MAD",
		TotalMAD:       decimal.RequireFromString("436.50"),
		Status:         status,
		Calculation:    datatypes.JSON(`{}`),
		CreatedAt:      created,
		UpdatedAt:      created,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func TestUpdateStatus_StampsClockTime(t *testing.T) {
	svc, db, fake := newOrderFixture(t)
	ctx := context.Background()

	order := seedOrder(t, db, domain.StatusPending)

	updated, err := svc.UpdateStatus(ctx, order.ID.String(), domain.StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, updated.Status)
	assert.Equal(t, fake.Now(), updated.UpdatedAt)

	stored, err := svc.Get(ctx, order.ID.String())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
}

func TestUpdateStatus_RejectsBadTransitions(t *testing.T) {
	svc, db, _ := newOrderFixture(t)
	ctx := context.Background()

	order := seedOrder(t, db, domain.StatusDelivered)

	_, err := svc.UpdateStatus(ctx, order.ID.String(), domain.StatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.UpdateStatus(ctx, order.ID.String(), "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestExportCSV_WritesHeaderAndRows(t *testing.T) {
	svc, db, _ := newOrderFixture(t)
	ctx := context.Background()

	order := seedOrder(t, db, domain.StatusConfirmed)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, domain.ListRequest{}, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "order_id,subscription_id,customer_id,currency,total,status,created_at", lines[0])
	assert.Contains(t, lines[1], order.ID.String())
	assert.Contains(t, lines[1], "436.50")
	assert.Contains(t, lines[1], "confirmed")
}
