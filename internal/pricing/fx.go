package pricing

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/service"
	"go.uber.org/fx"
)

var Module = fx.Module("pricing.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
