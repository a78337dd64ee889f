package service

import (
	"context"
	"testing"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount/domain"
	discountrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount/repository"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newDiscountService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&pricingdomain.DiscountRule{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  discountrepository.Provide(),
	})
}

func TestDiscountCreate_Validation(t *testing.T) {
	svc := newDiscountService(t)
	ctx := context.Background()

	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(-time.Hour)

	cases := []struct {
		name string
		req  domain.CreateRequest
		want error
	}{
		{
			name: "unknown type",
			req:  domain.CreateRequest{DiscountType: "loyalty", ConditionValue: 5, DiscountPercentage: 0.05},
			want: domain.ErrInvalidDiscountType,
		},
		{
			name: "zero condition",
			req:  domain.CreateRequest{DiscountType: "days_per_week", ConditionValue: 0, DiscountPercentage: 0.05},
			want: domain.ErrInvalidCondition,
		},
		{
			name: "zero percentage",
			req:  domain.CreateRequest{DiscountType: "days_per_week", ConditionValue: 5, DiscountPercentage: 0},
			want: domain.ErrInvalidPercentage,
		},
		{
			name: "percentage above one",
			req:  domain.CreateRequest{DiscountType: "days_per_week", ConditionValue: 5, DiscountPercentage: 1.5},
			want: domain.ErrInvalidPercentage,
		},
		{
			name: "inverted validity window",
			req:  domain.CreateRequest{DiscountType: "duration_weeks", ConditionValue: 4, DiscountPercentage: 0.10, ValidFrom: &from, ValidTo: &to},
			want: domain.ErrInvalidValidityRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDiscountCreate_FullPercentageAllowed(t *testing.T) {
	svc := newDiscountService(t)

	rule, err := svc.Create(context.Background(), domain.CreateRequest{
		DiscountType:       "seasonal",
		ConditionValue:     1,
		DiscountPercentage: 1.0,
		Stackable:          true,
	})
	require.NoError(t, err)
	assert.True(t, rule.Active)
	assert.True(t, rule.Stackable)
}

func TestDiscountUpdate_RoundTrip(t *testing.T) {
	svc := newDiscountService(t)
	ctx := context.Background()

	rule, err := svc.Create(ctx, domain.CreateRequest{
		DiscountType:       "duration_weeks",
		ConditionValue:     4,
		DiscountPercentage: 0.10,
	})
	require.NoError(t, err)

	newCondition := 8
	newPercentage := 0.15
	inactive := false
	updated, err := svc.Update(ctx, rule.ID.String(), domain.UpdateRequest{
		ConditionValue:     &newCondition,
		DiscountPercentage: &newPercentage,
		Active:             &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, 8, updated.ConditionValue)
	assert.False(t, updated.Active)

	rules, err := svc.List(ctx, domain.ListRequest{DiscountType: "duration_weeks"})
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, 8, rules[0].ConditionValue)
}

func TestDiscountGet_UnknownID(t *testing.T) {
	svc := newDiscountService(t)

	_, err := svc.Get(context.Background(), "not-a-snowflake")
	assert.ErrorIs(t, err, domain.ErrInvalidRuleID)

	_, err = svc.Get(context.Background(), "123456789")
	assert.ErrorIs(t, err, domain.ErrRuleNotFound)
}
