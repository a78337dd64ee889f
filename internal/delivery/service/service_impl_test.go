package service

import (
	"context"
	"testing"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newDeliveryFixture(t *testing.T) (domain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Delivery{}))

	fake := clock.NewFakeClock(time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC))
	svc := New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		Clock: fake,
	})
	return svc, db, fake
}

// seedNode is shared across seedDelivery calls: a fresh node per call
// would repeat IDs (same millisecond, same node, sequence reset to 0).
var seedNode *snowflake.Node

func seedDelivery(t *testing.T, db *gorm.DB, subID snowflake.ID, date time.Time) *domain.Delivery {
	t.Helper()

	if seedNode == nil {
		node, err := snowflake.NewNode(3)
		require.NoError(t, err)
		seedNode = node
	}

	delivery := &domain.Delivery{
		ID:             seedNode.Generate(),
		SubscriptionID: subID,
		DeliveryDate:   date,
		Status:         domain.StatusScheduled,
		CreatedAt:      date,
		UpdatedAt:      date,
	}
	require.NoError(t, db.Create(delivery).Error)
	return delivery
}

func TestDeliveryUpdateStatus_StampsClockTime(t *testing.T) {
	svc, db, fake := newDeliveryFixture(t)
	ctx := context.Background()

	node, err := snowflake.NewNode(4)
	require.NoError(t, err)
	delivery := seedDelivery(t, db, node.Generate(), time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC))

	updated, err := svc.UpdateStatus(ctx, delivery.ID.String(), domain.StatusDelivered)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDelivered, updated.Status)
	assert.Equal(t, fake.Now(), updated.UpdatedAt)

	_, err = svc.UpdateStatus(ctx, delivery.ID.String(), "lost")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestDeliveryList_FiltersBySubscription(t *testing.T) {
	svc, db, _ := newDeliveryFixture(t)
	ctx := context.Background()

	node, err := snowflake.NewNode(5)
	require.NoError(t, err)
	subA := node.Generate()
	subB := node.Generate()

	seedDelivery(t, db, subA, time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC))
	seedDelivery(t, db, subA, time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC))
	seedDelivery(t, db, subB, time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC))

	items, err := svc.List(ctx, domain.ListRequest{SubscriptionID: subA.String()})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].DeliveryDate.Before(items[1].DeliveryDate))
}
