package mealprice

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/mealprice/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/mealprice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("mealprice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
