package service

import (
	"context"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("discount.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*pricingdomain.DiscountRule, error) {
	discountType := pricingdomain.DiscountType(req.DiscountType)
	if !pricingdomain.ValidDiscountType(discountType) {
		return nil, domain.ErrInvalidDiscountType
	}
	if req.ConditionValue <= 0 {
		return nil, domain.ErrInvalidCondition
	}
	if req.DiscountPercentage <= 0 || req.DiscountPercentage > 1 {
		return nil, domain.ErrInvalidPercentage
	}
	if err := validateWindow(req.ValidFrom, req.ValidTo); err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now().UTC()
	entity := &pricingdomain.DiscountRule{
		ID:                 s.genID.Generate(),
		DiscountType:       discountType,
		ConditionValue:     req.ConditionValue,
		DiscountPercentage: decimal.NewFromFloat(req.DiscountPercentage),
		Stackable:          req.Stackable,
		Active:             active,
		ValidFrom:          req.ValidFrom,
		ValidTo:            req.ValidTo,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Create(ctx, s.db, entity); err != nil {
		s.log.Error("failed to create discount rule", zap.Error(err))
		return nil, err
	}
	return entity, nil
}

func (s *Service) Get(ctx context.Context, id string) (*pricingdomain.DiscountRule, error) {
	ruleID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidRuleID
	}

	rule, err := s.repo.FindByID(ctx, s.db, ruleID)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrRuleNotFound
	}
	return rule, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]pricingdomain.DiscountRule, error) {
	filter := domain.ListFilter{Active: req.Active}
	if req.DiscountType != "" {
		discountType := pricingdomain.DiscountType(req.DiscountType)
		if !pricingdomain.ValidDiscountType(discountType) {
			return nil, domain.ErrInvalidDiscountType
		}
		filter.DiscountType = discountType
	}
	return s.repo.List(ctx, s.db, filter)
}

func (s *Service) Update(ctx context.Context, id string, req domain.UpdateRequest) (*pricingdomain.DiscountRule, error) {
	rule, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ConditionValue != nil {
		if *req.ConditionValue <= 0 {
			return nil, domain.ErrInvalidCondition
		}
		rule.ConditionValue = *req.ConditionValue
	}
	if req.DiscountPercentage != nil {
		if *req.DiscountPercentage <= 0 || *req.DiscountPercentage > 1 {
			return nil, domain.ErrInvalidPercentage
		}
		rule.DiscountPercentage = decimal.NewFromFloat(*req.DiscountPercentage)
	}
	if req.Stackable != nil {
		rule.Stackable = *req.Stackable
	}
	if req.Active != nil {
		rule.Active = *req.Active
	}
	if req.ValidFrom != nil {
		rule.ValidFrom = req.ValidFrom
	}
	if req.ValidTo != nil {
		rule.ValidTo = req.ValidTo
	}
	if err := validateWindow(rule.ValidFrom, rule.ValidTo); err != nil {
		return nil, err
	}

	rule.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, rule); err != nil {
		s.log.Error("failed to update discount rule", zap.Error(err))
		return nil, err
	}
	return rule, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	rule, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, rule.ID)
}

func validateWindow(from, to *time.Time) error {
	if from != nil && to != nil && !from.Before(*to) {
		return domain.ErrInvalidValidityRange
	}
	return nil
}
