package plan

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/service"
	"go.uber.org/fx"
)

var Module = fx.Module("plan.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
