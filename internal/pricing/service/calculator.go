package service

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/shopspring/decimal"
)

// Calculate prices a subscription from the supplied meal prices and
// discount rules. It is a pure function: no I/O, no hidden state, and
// identical inputs always produce identical output, so the storefront
// and back-office endpoints can share it without drift.
//
// The price per day is the sum of every supplied meal price row; callers
// are responsible for resolving the requested meal types to rows first.
// At most one rule per category applies: the days_per_week rule whose
// condition equals the day count exactly, then the duration_weeks rule
// with the largest condition not exceeding the duration. The second
// percentage is taken from the balance left by the first, not from the
// gross amount.
func Calculate(
	mealPrices []domain.MealPrice,
	daysPerWeek int,
	durationWeeks int,
	rules []domain.DiscountRule,
	planName string,
	mealTypes []string,
) domain.Calculation {
	pricePerDay := decimal.Zero
	lines := make([]domain.MealPriceLine, 0, len(mealPrices))
	for _, row := range mealPrices {
		pricePerDay = pricePerDay.Add(row.BasePriceMAD)
		lines = append(lines, domain.MealPriceLine{
			Meal:  row.MealType,
			Price: round2(row.BasePriceMAD),
		})
	}

	grossWeekly := pricePerDay.Mul(decimal.NewFromInt(int64(daysPerWeek)))
	finalWeekly := grossWeekly
	applied := make([]domain.AppliedDiscount, 0, 2)

	if rule, ok := matchDaysRule(rules, daysPerWeek); ok {
		amount := finalWeekly.Mul(rule.DiscountPercentage)
		finalWeekly = finalWeekly.Sub(amount)
		applied = append(applied, domain.AppliedDiscount{
			Type:       string(domain.DiscountDaysPerWeek),
			Condition:  rule.ConditionValue,
			Percentage: rule.DiscountPercentage.InexactFloat64(),
			Amount:     round2(amount),
		})
	}

	if rule, ok := bestDurationRule(rules, durationWeeks); ok {
		amount := finalWeekly.Mul(rule.DiscountPercentage)
		finalWeekly = finalWeekly.Sub(amount)
		applied = append(applied, domain.AppliedDiscount{
			Type:       string(domain.DiscountDurationWeeks),
			Condition:  rule.ConditionValue,
			Percentage: rule.DiscountPercentage.InexactFloat64(),
			Amount:     round2(amount),
		})
	}

	total := finalWeekly.Mul(decimal.NewFromInt(int64(durationWeeks))).Round(2)

	return domain.Calculation{
		PricePerDay:      round2(pricePerDay),
		GrossWeekly:      round2(grossWeekly),
		DiscountsApplied: applied,
		FinalWeekly:      round2(finalWeekly),
		DurationWeeks:    durationWeeks,
		TotalRoundedMAD:  total.InexactFloat64(),
		Breakdown: domain.Breakdown{
			Plan:       planName,
			Meals:      mealTypes,
			Days:       daysPerWeek,
			MealPrices: lines,
		},
	}
}

// matchDaysRule requires exact equality on the day count; a 5-day rule
// never applies to a 6-day selection. First match wins.
func matchDaysRule(rules []domain.DiscountRule, daysPerWeek int) (domain.DiscountRule, bool) {
	for _, rule := range rules {
		if rule.DiscountType == domain.DiscountDaysPerWeek && rule.ConditionValue == daysPerWeek {
			return rule, true
		}
	}
	return domain.DiscountRule{}, false
}

// bestDurationRule selects the longest qualifying tier, not the sum of
// all qualifying tiers.
func bestDurationRule(rules []domain.DiscountRule, durationWeeks int) (domain.DiscountRule, bool) {
	best := domain.DiscountRule{}
	found := false
	for _, rule := range rules {
		if rule.DiscountType != domain.DiscountDurationWeeks {
			continue
		}
		if rule.ConditionValue <= 0 || rule.ConditionValue > durationWeeks {
			continue
		}
		if !found || rule.ConditionValue > best.ConditionValue {
			best = rule
			found = true
		}
	}
	return best, found
}

func round2(value decimal.Decimal) float64 {
	return value.Round(2).InexactFloat64()
}
