package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	Clock    clock.Clock
	Repo     pricingdomain.Repository
	PlanRepo plandomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	clock    clock.Clock
	repo     pricingdomain.Repository
	planRepo plandomain.Repository
}

func New(p Params) pricingdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("pricing.service"),
		clock:    p.Clock,
		repo:     p.Repo,
		planRepo: p.PlanRepo,
	}
}

// Quote validates the selection, loads the active price and rule rows,
// and runs the calculator. The rule set is re-read on every call, so a
// back-office edit takes effect on the next quote with no invalidation.
func (s *Service) Quote(ctx context.Context, req pricingdomain.QuoteRequest) (*pricingdomain.Calculation, error) {
	planName, mealTypes, err := normalizeSelection(req)
	if err != nil {
		return nil, err
	}
	if req.Days < 1 || req.Days > 7 {
		return nil, pricingdomain.ErrInvalidDays
	}
	if req.Duration < 1 {
		return nil, pricingdomain.ErrInvalidDuration
	}

	plan, err := s.planRepo.FindByName(ctx, s.db, planName)
	if err != nil {
		s.log.Error("failed to resolve plan", zap.String("plan", planName), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", pricingdomain.ErrQuoteFailed, err)
	}
	if plan == nil || !plan.Active {
		return nil, pricingdomain.ErrMealsNotFound
	}

	rows, err := s.repo.ActiveMealPrices(ctx, s.db, plan.ID, mealTypes)
	if err != nil {
		s.log.Error("failed to load meal prices", zap.String("plan", planName), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", pricingdomain.ErrQuoteFailed, err)
	}

	ordered, ok := orderByRequest(rows, mealTypes)
	if !ok {
		return nil, pricingdomain.ErrMealsNotFound
	}

	rules, err := s.repo.ActiveDiscountRules(ctx, s.db, s.clock.Now())
	if err != nil {
		s.log.Error("failed to load discount rules", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", pricingdomain.ErrQuoteFailed, err)
	}

	calc := Calculate(ordered, req.Days, req.Duration, rules, plan.Name, mealTypes)
	return &calc, nil
}

func normalizeSelection(req pricingdomain.QuoteRequest) (string, []string, error) {
	planName := strings.TrimSpace(req.Plan)
	if planName == "" || len(req.Meals) == 0 {
		return "", nil, pricingdomain.ErrInvalidSelection
	}

	mealTypes := make([]string, 0, len(req.Meals))
	seen := make(map[string]struct{}, len(req.Meals))
	for _, meal := range req.Meals {
		meal = strings.TrimSpace(meal)
		if meal == "" {
			return "", nil, pricingdomain.ErrInvalidSelection
		}
		if _, dup := seen[meal]; dup {
			continue
		}
		seen[meal] = struct{}{}
		mealTypes = append(mealTypes, meal)
	}
	return planName, mealTypes, nil
}

// orderByRequest arranges price rows in the order the meals were asked
// for and reports whether every requested meal type has a price.
func orderByRequest(rows []pricingdomain.MealPrice, mealTypes []string) ([]pricingdomain.MealPrice, bool) {
	byType := make(map[string]pricingdomain.MealPrice, len(rows))
	for _, row := range rows {
		byType[row.MealType] = row
	}

	ordered := make([]pricingdomain.MealPrice, 0, len(mealTypes))
	for _, meal := range mealTypes {
		row, ok := byType[meal]
		if !ok {
			return nil, false
		}
		ordered = append(ordered, row)
	}
	return ordered, true
}
