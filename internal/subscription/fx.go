package subscription

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription/service"
	"go.uber.org/fx"
)

var Module = fx.Module("subscription.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
