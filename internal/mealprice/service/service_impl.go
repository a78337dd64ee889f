package service

import (
	"context"
	"strings"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/mealprice/domain"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     domain.Repository
	PlanRepo plandomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	planRepo plandomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("mealprice.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		planRepo: p.PlanRepo,
	}
}

// Create inserts a base price row. Zero and negative prices are rejected
// at write time so the calculator never has to special-case them.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*pricingdomain.MealPrice, error) {
	mealType := strings.TrimSpace(req.MealType)
	if mealType == "" {
		return nil, domain.ErrInvalidMealPrice
	}
	if req.BasePriceMAD <= 0 {
		return nil, domain.ErrInvalidBasePrice
	}

	planID, err := snowflake.ParseString(req.PlanID)
	if err != nil {
		return nil, plandomain.ErrInvalidPlanID
	}
	plan, err := s.planRepo.FindByID(ctx, s.db, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, plandomain.ErrPlanNotFound
	}

	existing, err := s.repo.FindByPlanAndType(ctx, s.db, plan.ID, mealType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrMealPriceExists
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	entity := &pricingdomain.MealPrice{
		ID:           s.genID.Generate(),
		PlanID:       plan.ID,
		MealType:     mealType,
		BasePriceMAD: decimal.NewFromFloat(req.BasePriceMAD),
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, s.db, entity); err != nil {
		s.log.Error("failed to create meal price", zap.Error(err))
		return nil, err
	}
	return entity, nil
}

func (s *Service) Get(ctx context.Context, id string) (*pricingdomain.MealPrice, error) {
	priceID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidMealPriceID
	}

	price, err := s.repo.FindByID(ctx, s.db, priceID)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, domain.ErrMealPriceNotFound
	}
	return price, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]pricingdomain.MealPrice, error) {
	var planID snowflake.ID
	if req.PlanID != "" {
		parsed, err := snowflake.ParseString(req.PlanID)
		if err != nil {
			return nil, plandomain.ErrInvalidPlanID
		}
		planID = parsed
	}
	return s.repo.List(ctx, s.db, planID)
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*pricingdomain.MealPrice, error) {
	price, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BasePriceMAD != nil {
		if *req.BasePriceMAD <= 0 {
			return nil, domain.ErrInvalidBasePrice
		}
		price.BasePriceMAD = decimal.NewFromFloat(*req.BasePriceMAD)
	}
	if req.Active != nil {
		price.Active = *req.Active
	}

	price.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, price); err != nil {
		s.log.Error("failed to update meal price", zap.Error(err))
		return nil, err
	}
	return price, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	price, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, price.ID)
}
