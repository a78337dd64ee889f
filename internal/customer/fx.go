package customer

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
