package service

import (
	"context"
	"encoding/json"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	customerdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/domain"
	deliverydomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery/domain"
	orderdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	subscriptiondomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Clock     clock.Clock
	Repo      subscriptiondomain.Repository
	PlanRepo  plandomain.Repository
	OrderRepo orderdomain.Repository
	Pricing   pricingdomain.Service
	Customers customerdomain.Service
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         subscriptiondomain.Repository
	planRepo     plandomain.Repository
	orderRepo    orderdomain.Repository
	deliveryRepo repository.Repository[deliverydomain.Delivery]
	pricing      pricingdomain.Service
	customers    customerdomain.Service
}

func New(p Params) subscriptiondomain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("subscription.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		planRepo:     p.PlanRepo,
		orderRepo:    p.OrderRepo,
		deliveryRepo: repository.ProvideStore[deliverydomain.Delivery](p.DB),
		pricing:      p.Pricing,
		customers:    p.Customers,
	}
}

// Checkout prices the selection through the quote engine and persists
// the subscription, its pending order, and the delivery schedule in one
// transaction. The charged amount always comes from the engine, never
// from the request.
func (s *Service) Checkout(ctx context.Context, req subscriptiondomain.CheckoutRequest) (*subscriptiondomain.CheckoutResult, error) {
	calc, err := s.pricing.Quote(ctx, pricingdomain.QuoteRequest{
		Plan:     req.Plan,
		Meals:    req.Meals,
		Days:     req.Days,
		Duration: req.Duration,
	})
	if err != nil {
		return nil, err
	}

	customer, err := s.customers.Create(ctx, req.Customer)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindByName(ctx, s.db, calc.Breakdown.Plan)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, pricingdomain.ErrMealsNotFound
	}

	mealsJSON, err := json.Marshal(calc.Breakdown.Meals)
	if err != nil {
		return nil, err
	}
	calcJSON, err := json.Marshal(calc)
	if err != nil {
		return nil, err
	}

	startDate := s.clock.Now().AddDate(0, 0, 1)
	if req.StartAt != nil {
		startDate = req.StartAt.UTC()
	}

	now := s.clock.Now()
	sub := &subscriptiondomain.Subscription{
		ID:             s.genID.Generate(),
		CustomerID:     customer.ID,
		PlanID:         plan.ID,
		Meals:          datatypes.JSON(mealsJSON),
		DaysPerWeek:    req.Days,
		DurationWeeks:  req.Duration,
		WeeklyPriceMAD: decimal.NewFromFloat(calc.FinalWeekly),
		TotalPriceMAD:  decimal.NewFromFloat(calc.TotalRoundedMAD),
		Status:         subscriptiondomain.StatusActive,
		StartDate:      startDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	order := &orderdomain.Order{
		ID:             s.genID.Generate(),
		SubscriptionID: sub.ID,
		CustomerID:     customer.ID,
		Currency:       "MAD",
		TotalMAD:       decimal.NewFromFloat(calc.TotalRoundedMAD),
		Status:         orderdomain.StatusPending,
		Calculation:    datatypes.JSON(calcJSON),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	dates := deliverydomain.BuildSchedule(startDate, req.Days, req.Duration)
	deliveries := make([]*deliverydomain.Delivery, 0, len(dates))
	for _, date := range dates {
		deliveries = append(deliveries, &deliverydomain.Delivery{
			ID:             s.genID.Generate(),
			SubscriptionID: sub.ID,
			DeliveryDate:   date,
			Status:         deliverydomain.StatusScheduled,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, sub); err != nil {
			return err
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return err
		}
		return s.deliveryRepo.WithTrx(tx).BatchCreate(ctx, deliveries)
	})
	if err != nil {
		s.log.Error("checkout failed", zap.Error(err))
		return nil, err
	}

	return &subscriptiondomain.CheckoutResult{
		Subscription: sub,
		Order:        order,
		Calculation:  calc,
	}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*subscriptiondomain.Subscription, error) {
	subID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, subscriptiondomain.ErrInvalidSubscriptionID
	}

	sub, err := s.repo.FindByID(ctx, s.db, subID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, subscriptiondomain.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context, req subscriptiondomain.ListRequest) ([]subscriptiondomain.Subscription, error) {
	var filter subscriptiondomain.ListFilter
	if req.CustomerID != "" {
		customerID, err := snowflake.ParseString(req.CustomerID)
		if err != nil {
			return nil, customerdomain.ErrInvalidCustomerID
		}
		filter.CustomerID = customerID
	}
	if req.Status != "" {
		status := subscriptiondomain.Status(req.Status)
		switch status {
		case subscriptiondomain.StatusActive, subscriptiondomain.StatusPaused, subscriptiondomain.StatusCancelled:
		default:
			return nil, subscriptiondomain.ErrInvalidStatus
		}
		filter.Status = status
	}
	return s.repo.List(ctx, s.db, filter)
}

func (s *Service) Pause(ctx context.Context, id string) (*subscriptiondomain.Subscription, error) {
	return s.transition(ctx, id, subscriptiondomain.StatusPaused)
}

func (s *Service) Resume(ctx context.Context, id string) (*subscriptiondomain.Subscription, error) {
	return s.transition(ctx, id, subscriptiondomain.StatusActive)
}

func (s *Service) Cancel(ctx context.Context, id string) (*subscriptiondomain.Subscription, error) {
	return s.transition(ctx, id, subscriptiondomain.StatusCancelled)
}

func (s *Service) transition(ctx context.Context, id string, to subscriptiondomain.Status) (*subscriptiondomain.Subscription, error) {
	sub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(sub.Status, to) {
		return nil, subscriptiondomain.ErrInvalidTransition
	}

	sub.Status = to
	sub.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateStatus(ctx, s.db, sub); err != nil {
		s.log.Error("failed to update subscription status", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

// canTransition encodes the lifecycle: active subscriptions pause or
// cancel, paused ones resume or cancel, cancelled is terminal.
func canTransition(from, to subscriptiondomain.Status) bool {
	switch from {
	case subscriptiondomain.StatusActive:
		return to == subscriptiondomain.StatusPaused || to == subscriptiondomain.StatusCancelled
	case subscriptiondomain.StatusPaused:
		return to == subscriptiondomain.StatusActive || to == subscriptiondomain.StatusCancelled
	default:
		return false
	}
}
