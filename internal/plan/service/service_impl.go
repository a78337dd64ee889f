package service

import (
	"context"
	"strings"
	"time"

	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  plandomain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  plandomain.Repository
}

func New(p Params) plandomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("plan.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req plandomain.CreateRequest) (*plandomain.Plan, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, plandomain.ErrInvalidName
	}

	existing, err := s.repo.FindByName(ctx, s.db, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, plandomain.ErrPlanExists
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	entity := &plandomain.Plan{
		ID:          s.genID.Generate(),
		Name:        name,
		Slug:        slug.Make(name),
		Description: strings.TrimSpace(req.Description),
		Active:      active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, s.db, entity); err != nil {
		s.log.Error("failed to create plan", zap.Error(err))
		return nil, err
	}
	return entity, nil
}

func (s *Service) Get(ctx context.Context, id string) (*plandomain.Plan, error) {
	planID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, plandomain.ErrInvalidPlanID
	}

	plan, err := s.repo.FindByID(ctx, s.db, planID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, plandomain.ErrPlanNotFound
	}
	return plan, nil
}

func (s *Service) List(ctx context.Context, req plandomain.ListRequest) ([]plandomain.Plan, error) {
	return s.repo.List(ctx, s.db, req)
}

func (s *Service) Update(ctx context.Context, id string, req plandomain.UpdateRequest) (*plandomain.Plan, error) {
	plan, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, plandomain.ErrInvalidName
		}
		if name != plan.Name {
			existing, err := s.repo.FindByName(ctx, s.db, name)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, plandomain.ErrPlanExists
			}
		}
		plan.Name = name
		plan.Slug = slug.Make(name)
	}
	if req.Description != nil {
		plan.Description = strings.TrimSpace(*req.Description)
	}
	if req.Active != nil {
		plan.Active = *req.Active
	}

	plan.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, plan); err != nil {
		s.log.Error("failed to update plan", zap.Error(err))
		return nil, err
	}
	return plan, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	plan, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, plan.ID)
}
