package service

import (
	"context"
	"testing"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	planrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/repository"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	pricingrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type quoteFixture struct {
	db     *gorm.DB
	node   *snowflake.Node
	clock  *clock.FakeClock
	svc    pricingdomain.Service
	planID snowflake.ID
}

func newQuoteFixture(t *testing.T) *quoteFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&plandomain.Plan{},
		&pricingdomain.MealPrice{},
		&pricingdomain.DiscountRule{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	svc := New(Params{
		DB:       db,
		Log:      zap.NewNop(),
		Clock:    fake,
		Repo:     pricingrepository.Provide(),
		PlanRepo: planrepository.Provide(),
	})

	planID := node.Generate()
	now := fake.Now()
	require.NoError(t, db.Create(&plandomain.Plan{
		ID:        planID,
		Name:      "Weight Loss",
		Slug:      "weight-loss",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	return &quoteFixture{db: db, node: node, clock: fake, svc: svc, planID: planID}
}

func (f *quoteFixture) addMealPrice(t *testing.T, mealType string, price float64) {
	t.Helper()
	now := f.clock.Now()
	require.NoError(t, f.db.Create(&pricingdomain.MealPrice{
		ID:           f.node.Generate(),
		PlanID:       f.planID,
		MealType:     mealType,
		BasePriceMAD: decimal.NewFromFloat(price),
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}).Error)
}

func (f *quoteFixture) addRule(t *testing.T, rule pricingdomain.DiscountRule) {
	t.Helper()
	rule.ID = f.node.Generate()
	rule.CreatedAt = f.clock.Now()
	rule.UpdatedAt = rule.CreatedAt
	// gorm substitutes the `default:true` tag value for a zero-valued
	// bool on insert (and writes it back to the struct), so Active=false
	// never reaches the row via Create; force the column afterwards so
	// the fixture holds the state it describes.
	active := rule.Active
	require.NoError(t, f.db.Create(&rule).Error)
	require.NoError(t, f.db.Model(&pricingdomain.DiscountRule{}).
		Where("id = ?", rule.ID).
		UpdateColumn("active", active).Error)
}

func TestQuote_FullScenario(t *testing.T) {
	f := newQuoteFixture(t)
	f.addMealPrice(t, "Breakfast", 45)
	f.addMealPrice(t, "Lunch", 55)
	f.addRule(t, pricingdomain.DiscountRule{
		DiscountType:       pricingdomain.DiscountDaysPerWeek,
		ConditionValue:     5,
		DiscountPercentage: decimal.NewFromFloat(0.03),
		Active:             true,
	})
	f.addRule(t, pricingdomain.DiscountRule{
		DiscountType:       pricingdomain.DiscountDurationWeeks,
		ConditionValue:     4,
		DiscountPercentage: decimal.NewFromFloat(0.10),
		Active:             true,
	})

	calc, err := f.svc.Quote(context.Background(), pricingdomain.QuoteRequest{
		Plan:     "Weight Loss",
		Meals:    []string{"Breakfast", "Lunch"},
		Days:     5,
		Duration: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, calc.PricePerDay)
	assert.Equal(t, 500.0, calc.GrossWeekly)
	assert.Equal(t, 436.5, calc.FinalWeekly)
	assert.Equal(t, 1746.0, calc.TotalRoundedMAD)
	assert.Len(t, calc.DiscountsApplied, 2)
	assert.Equal(t, []string{"Breakfast", "Lunch"}, calc.Breakdown.Meals)
}

func TestQuote_ValidationErrors(t *testing.T) {
	f := newQuoteFixture(t)
	f.addMealPrice(t, "Lunch", 55)

	cases := []struct {
		name string
		req  pricingdomain.QuoteRequest
		want error
	}{
		{
			name: "missing plan",
			req:  pricingdomain.QuoteRequest{Meals: []string{"Lunch"}, Days: 5, Duration: 4},
			want: pricingdomain.ErrInvalidSelection,
		},
		{
			name: "missing meals",
			req:  pricingdomain.QuoteRequest{Plan: "Weight Loss", Days: 5, Duration: 4},
			want: pricingdomain.ErrInvalidSelection,
		},
		{
			name: "days too low",
			req:  pricingdomain.QuoteRequest{Plan: "Weight Loss", Meals: []string{"Lunch"}, Days: 0, Duration: 4},
			want: pricingdomain.ErrInvalidDays,
		},
		{
			name: "days too high",
			req:  pricingdomain.QuoteRequest{Plan: "Weight Loss", Meals: []string{"Lunch"}, Days: 8, Duration: 4},
			want: pricingdomain.ErrInvalidDays,
		},
		{
			name: "duration too low",
			req:  pricingdomain.QuoteRequest{Plan: "Weight Loss", Meals: []string{"Lunch"}, Days: 5, Duration: 0},
			want: pricingdomain.ErrInvalidDuration,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Quote(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestQuote_UnknownPlanOrMeals(t *testing.T) {
	f := newQuoteFixture(t)
	f.addMealPrice(t, "Lunch", 55)

	_, err := f.svc.Quote(context.Background(), pricingdomain.QuoteRequest{
		Plan:     "No Such Plan",
		Meals:    []string{"Lunch"},
		Days:     5,
		Duration: 4,
	})
	assert.ErrorIs(t, err, pricingdomain.ErrMealsNotFound)

	_, err = f.svc.Quote(context.Background(), pricingdomain.QuoteRequest{
		Plan:     "Weight Loss",
		Meals:    []string{"Lunch", "Dinner"},
		Days:     5,
		Duration: 4,
	})
	assert.ErrorIs(t, err, pricingdomain.ErrMealsNotFound)
}

func TestQuote_IgnoresInactiveAndExpiredRules(t *testing.T) {
	f := newQuoteFixture(t)
	f.addMealPrice(t, "Lunch", 100)

	past := f.clock.Now().Add(-48 * time.Hour)
	f.addRule(t, pricingdomain.DiscountRule{
		DiscountType:       pricingdomain.DiscountDaysPerWeek,
		ConditionValue:     5,
		DiscountPercentage: decimal.NewFromFloat(0.50),
		Active:             false,
	})
	f.addRule(t, pricingdomain.DiscountRule{
		DiscountType:       pricingdomain.DiscountDurationWeeks,
		ConditionValue:     2,
		DiscountPercentage: decimal.NewFromFloat(0.50),
		Active:             true,
		ValidTo:            &past,
	})

	calc, err := f.svc.Quote(context.Background(), pricingdomain.QuoteRequest{
		Plan:     "Weight Loss",
		Meals:    []string{"Lunch"},
		Days:     5,
		Duration: 4,
	})
	require.NoError(t, err)
	assert.Empty(t, calc.DiscountsApplied)
	assert.Equal(t, 2000.0, calc.TotalRoundedMAD)
}

func TestQuote_ReflectsRuleEditsImmediately(t *testing.T) {
	f := newQuoteFixture(t)
	f.addMealPrice(t, "Lunch", 100)

	req := pricingdomain.QuoteRequest{
		Plan:     "Weight Loss",
		Meals:    []string{"Lunch"},
		Days:     5,
		Duration: 1,
	}

	calc, err := f.svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 500.0, calc.TotalRoundedMAD)

	f.addRule(t, pricingdomain.DiscountRule{
		DiscountType:       pricingdomain.DiscountDaysPerWeek,
		ConditionValue:     5,
		DiscountPercentage: decimal.NewFromFloat(0.10),
		Active:             true,
	})

	calc, err = f.svc.Quote(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 450.0, calc.TotalRoundedMAD)
}
