package service

import (
	"context"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery/domain"
	subscriptiondomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/db/option"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/repository"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	deliveryRepo repository.Repository[domain.Delivery]
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("delivery.service"),
		clock:        p.Clock,
		deliveryRepo: repository.ProvideStore[domain.Delivery](p.DB),
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Delivery, error) {
	query := &domain.Delivery{}
	if req.SubscriptionID != "" {
		subID, err := snowflake.ParseString(req.SubscriptionID)
		if err != nil {
			return nil, subscriptiondomain.ErrInvalidSubscriptionID
		}
		query.SubscriptionID = subID
	}
	if req.Status != "" {
		status := domain.Status(req.Status)
		if !domain.ValidStatus(status) {
			return nil, domain.ErrInvalidStatus
		}
		query.Status = status
	}

	rows, err := s.deliveryRepo.Find(ctx, query, option.WithOrder("delivery_date asc"))
	if err != nil {
		return nil, err
	}

	items := make([]domain.Delivery, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		items = append(items, *row)
	}
	return items, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Delivery, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	deliveryID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidDeliveryID
	}

	delivery, err := s.deliveryRepo.FindOne(ctx, &domain.Delivery{ID: deliveryID})
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, domain.ErrDeliveryNotFound
	}

	delivery.Status = status
	delivery.UpdatedAt = s.clock.Now()
	err = s.deliveryRepo.Update(ctx, deliveryID.String(), map[string]any{
		"status":     delivery.Status,
		"updated_at": delivery.UpdatedAt,
	})
	if err != nil {
		s.log.Error("failed to update delivery status", zap.Error(err))
		return nil, err
	}
	return delivery, nil
}
