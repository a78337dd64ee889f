package service

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	customerdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
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
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("order.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	orderID, err := snowflake.ParseString(id)
	if err != nil {
		return nil, domain.ErrInvalidOrderID
	}

	order, err := s.repo.FindByID(ctx, s.db, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Order, error) {
	filter, err := parseListFilter(req)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, s.db, filter)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(order.Status, status) {
		return nil, domain.ErrInvalidTransition
	}

	order.Status = status
	order.UpdatedAt = s.clock.Now()
	if err := s.repo.UpdateStatus(ctx, s.db, order); err != nil {
		s.log.Error("failed to update order status", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) ExportCSV(ctx context.Context, req domain.ListRequest, w io.Writer) error {
	orders, err := s.List(ctx, req)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"order_id", "subscription_id", "customer_id", "currency", "total", "status", "created_at"}); err != nil {
		return err
	}
	for _, order := range orders {
		record := []string{
			order.ID.String(),
			order.SubscriptionID.String(),
			order.CustomerID.String(),
			order.Currency,
			order.TotalMAD.StringFixed(2),
			string(order.Status),
			order.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func parseListFilter(req domain.ListRequest) (domain.ListFilter, error) {
	var filter domain.ListFilter
	if req.CustomerID != "" {
		customerID, err := snowflake.ParseString(req.CustomerID)
		if err != nil {
			return filter, customerdomain.ErrInvalidCustomerID
		}
		filter.CustomerID = customerID
	}
	if req.Status != "" {
		status := domain.Status(req.Status)
		if !domain.ValidStatus(status) {
			return filter, domain.ErrInvalidStatus
		}
		filter.Status = status
	}
	return filter, nil
}
