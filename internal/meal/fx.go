package meal

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/meal/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/meal/service"
	"go.uber.org/fx"
)

var Module = fx.Module("meal.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
