package waitlist

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/repository"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/service"
	"go.uber.org/fx"
)

var Module = fx.Module("waitlist.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
