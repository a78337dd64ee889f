package service

import (
	"testing"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func mealPrice(mealType string, price float64) domain.MealPrice {
	return domain.MealPrice{
		MealType:     mealType,
		BasePriceMAD: decimal.NewFromFloat(price),
	}
}

func rule(discountType domain.DiscountType, condition int, percentage float64) domain.DiscountRule {
	return domain.DiscountRule{
		DiscountType:       discountType,
		ConditionValue:     condition,
		DiscountPercentage: decimal.NewFromFloat(percentage),
		Active:             true,
	}
}

func TestCalculate_NoDiscountBaseline(t *testing.T) {
	prices := []domain.MealPrice{
		mealPrice("Breakfast", 45),
		mealPrice("Lunch", 55),
	}

	calc := Calculate(prices, 3, 1, nil, "Weight Loss", []string{"Breakfast", "Lunch"})

	assert.Equal(t, 100.0, calc.PricePerDay)
	assert.Equal(t, 300.0, calc.GrossWeekly)
	assert.Empty(t, calc.DiscountsApplied)
	assert.Equal(t, 300.0, calc.FinalWeekly)
	assert.Equal(t, 300.0, calc.TotalRoundedMAD)
	assert.Equal(t, 1, calc.DurationWeeks)
}

func TestCalculate_CompoundingScenario(t *testing.T) {
	prices := []domain.MealPrice{
		mealPrice("Breakfast", 45),
		mealPrice("Lunch", 55),
	}
	rules := []domain.DiscountRule{
		rule(domain.DiscountDaysPerWeek, 5, 0.03),
		rule(domain.DiscountDurationWeeks, 4, 0.10),
	}

	calc := Calculate(prices, 5, 4, rules, "Weight Loss", []string{"Breakfast", "Lunch"})

	assert.Equal(t, 100.0, calc.PricePerDay)
	assert.Equal(t, 500.0, calc.GrossWeekly)
	assert.Len(t, calc.DiscountsApplied, 2)

	days := calc.DiscountsApplied[0]
	assert.Equal(t, "days_per_week", days.Type)
	assert.Equal(t, 5, days.Condition)
	assert.Equal(t, 0.03, days.Percentage)
	assert.Equal(t, 15.0, days.Amount)

	duration := calc.DiscountsApplied[1]
	assert.Equal(t, "duration_weeks", duration.Type)
	assert.Equal(t, 4, duration.Condition)
	assert.Equal(t, 0.10, duration.Percentage)
	assert.Equal(t, 48.5, duration.Amount)

	assert.Equal(t, 436.5, calc.FinalWeekly)
	assert.Equal(t, 1746.0, calc.TotalRoundedMAD)
}

func TestCalculate_SecondDiscountAppliesToRemainingBalance(t *testing.T) {
	prices := []domain.MealPrice{mealPrice("Lunch", 100)}
	rules := []domain.DiscountRule{
		rule(domain.DiscountDaysPerWeek, 5, 0.05),
		rule(domain.DiscountDurationWeeks, 2, 0.10),
	}

	calc := Calculate(prices, 5, 2, rules, "Muscle Gain", []string{"Lunch"})

	// 500 - 5% = 475, then 475 - 10% = 427.5; not 500 - 15%.
	assert.Equal(t, 427.5, calc.FinalWeekly)
	assert.Equal(t, 855.0, calc.TotalRoundedMAD)
}

func TestCalculate_DaysRuleRequiresExactMatch(t *testing.T) {
	prices := []domain.MealPrice{mealPrice("Lunch", 100)}
	rules := []domain.DiscountRule{
		rule(domain.DiscountDaysPerWeek, 5, 0.05),
	}

	calc := Calculate(prices, 6, 1, rules, "Muscle Gain", []string{"Lunch"})

	assert.Empty(t, calc.DiscountsApplied)
	assert.Equal(t, 600.0, calc.TotalRoundedMAD)
}

func TestCalculate_BestDurationTierWins(t *testing.T) {
	prices := []domain.MealPrice{mealPrice("Lunch", 100)}
	rules := []domain.DiscountRule{
		rule(domain.DiscountDurationWeeks, 2, 0.05),
		rule(domain.DiscountDurationWeeks, 8, 0.20),
		rule(domain.DiscountDurationWeeks, 4, 0.10),
	}

	calc := Calculate(prices, 5, 6, rules, "Muscle Gain", []string{"Lunch"})

	// Duration 6 qualifies for tiers 2 and 4; only the 4-week tier applies.
	assert.Len(t, calc.DiscountsApplied, 1)
	assert.Equal(t, 4, calc.DiscountsApplied[0].Condition)
	assert.Equal(t, 0.10, calc.DiscountsApplied[0].Percentage)
	assert.Equal(t, 450.0, calc.FinalWeekly)
	assert.Equal(t, 2700.0, calc.TotalRoundedMAD)
}

func TestCalculate_IgnoresUnmatchedCategories(t *testing.T) {
	prices := []domain.MealPrice{mealPrice("Lunch", 100)}
	rules := []domain.DiscountRule{
		rule(domain.DiscountVolume, 3, 0.50),
		rule(domain.DiscountSeasonal, 1, 0.50),
		{DiscountType: domain.DiscountDurationWeeks, ConditionValue: 0, DiscountPercentage: decimal.NewFromFloat(0.50)},
	}

	calc := Calculate(prices, 3, 2, rules, "Muscle Gain", []string{"Lunch"})

	assert.Empty(t, calc.DiscountsApplied)
	assert.Equal(t, 600.0, calc.TotalRoundedMAD)
}

func TestCalculate_Deterministic(t *testing.T) {
	prices := []domain.MealPrice{
		mealPrice("Breakfast", 42.5),
		mealPrice("Dinner", 57.25),
	}
	rules := []domain.DiscountRule{
		rule(domain.DiscountDaysPerWeek, 6, 0.04),
		rule(domain.DiscountDurationWeeks, 12, 0.15),
	}
	meals := []string{"Breakfast", "Dinner"}

	first := Calculate(prices, 6, 12, rules, "Keto", meals)
	second := Calculate(prices, 6, 12, rules, "Keto", meals)

	assert.Equal(t, first, second)
}

func TestCalculate_LongerDurationNeverCostsMorePerWeek(t *testing.T) {
	prices := []domain.MealPrice{
		mealPrice("Breakfast", 45),
		mealPrice("Lunch", 55),
	}
	rules := []domain.DiscountRule{
		rule(domain.DiscountDurationWeeks, 2, 0.05),
		rule(domain.DiscountDurationWeeks, 4, 0.10),
		rule(domain.DiscountDurationWeeks, 8, 0.20),
	}
	meals := []string{"Breakfast", "Lunch"}

	prevPerWeek := decimal.NewFromInt(1 << 30)
	for weeks := 1; weeks <= 12; weeks++ {
		calc := Calculate(prices, 5, weeks, rules, "Weight Loss", meals)

		perWeek := decimal.NewFromFloat(calc.TotalRoundedMAD).
			Div(decimal.NewFromInt(int64(weeks)))
		assert.Truef(t, perWeek.LessThanOrEqual(prevPerWeek),
			"weeks=%d per-week %s exceeds previous %s", weeks, perWeek, prevPerWeek)
		prevPerWeek = perWeek
	}
}

func TestCalculate_BreakdownEchoesSelection(t *testing.T) {
	prices := []domain.MealPrice{
		mealPrice("Breakfast", 45),
		mealPrice("Dinner", 60),
	}

	calc := Calculate(prices, 4, 2, nil, "Keto", []string{"Breakfast", "Dinner"})

	assert.Equal(t, "Keto", calc.Breakdown.Plan)
	assert.Equal(t, []string{"Breakfast", "Dinner"}, calc.Breakdown.Meals)
	assert.Equal(t, 4, calc.Breakdown.Days)
	assert.Equal(t, []domain.MealPriceLine{
		{Meal: "Breakfast", Price: 45},
		{Meal: "Dinner", Price: 60},
	}, calc.Breakdown.MealPrices)
}
