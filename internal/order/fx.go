package order

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/service"
	"go.uber.org/fx"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
