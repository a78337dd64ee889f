package delivery

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery/service"
	"go.uber.org/fx"
)

var Module = fx.Module("delivery.service",
	fx.Provide(service.New),
)
