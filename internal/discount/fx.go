package discount

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount/service"
	"go.uber.org/fx"
)

var Module = fx.Module("discount.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
