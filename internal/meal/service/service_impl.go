package service

import (
	"context"
	"strings"
	"time"

	mealdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/meal/domain"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Repo     mealdomain.Repository
	PlanRepo plandomain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     mealdomain.Repository
	planRepo plandomain.Repository
}

func New(p Params) mealdomain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("meal.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		planRepo: p.PlanRepo,
	}
}

func (s *Service) Create(ctx context.Context, req mealdomain.CreateRequest) (*mealdomain.Meal, error) {
	name := strings.TrimSpace(req.Name)
	mealType := strings.TrimSpace(req.MealType)
	if name == "" || mealType == "" || req.Calories < 0 {
		return nil, mealdomain.ErrInvalidMeal
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

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	entity := &mealdomain.Meal{
		ID:          s.genID.Generate(),
		PlanID:      plan.ID,
		Name:        name,
		MealType:    mealType,
		Description: strings.TrimSpace(req.Description),
		Calories:    req.Calories,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, s.db, entity); err != nil {
		s.log.Error("failed to create meal", zap.Error(err))
		return nil, err
	}
	return entity, nil
}

func (s *Service) Get(ctx context.Context, id string) (*mealdomain.Meal, error) {
	mealID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, mealdomain.ErrInvalidMealID
	}

	meal, err := s.repo.FindByID(ctx, s.db, mealID)
	if err != nil {
		return nil, err
	}
	if meal == nil {
		return nil, mealdomain.ErrMealNotFound
	}
	return meal, nil
}

func (s *Service) List(ctx context.Context, req mealdomain.ListRequest) ([]mealdomain.Meal, error) {
	filter := mealdomain.ListFilter{
		MealType: strings.TrimSpace(req.MealType),
		Active:   req.Active,
	}
	if req.PlanID != "" {
		planID, err := snowflake.ParseString(req.PlanID)
		if err != nil {
			return nil, plandomain.ErrInvalidPlanID
		}
		filter.PlanID = planID
	}
	return s.repo.List(ctx, s.db, filter)
}

func (s *Service) Update(ctx context.Context, id string, req mealdomain.UpdateRequest) (*mealdomain.Meal, error) {
	meal, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, mealdomain.ErrInvalidMeal
		}
		meal.Name = name
	}
	if req.MealType != nil {
		mealType := strings.TrimSpace(*req.MealType)
		if mealType == "" {
			return nil, mealdomain.ErrInvalidMeal
		}
		meal.MealType = mealType
	}
	if req.Description != nil {
		meal.Description = strings.TrimSpace(*req.Description)
	}
	if req.Calories != nil {
		if *req.Calories < 0 {
			return nil, mealdomain.ErrInvalidMeal
		}
		meal.Calories = *req.Calories
	}
	if req.ImageURL != nil {
		meal.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.Active != nil {
		meal.Active = *req.Active
	}

	meal.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, meal); err != nil {
		s.log.Error("failed to update meal", zap.Error(err))
		return nil, err
	}
	return meal, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	meal, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, meal.ID)
}
