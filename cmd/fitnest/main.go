package main

import (
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/config"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/migration"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/observability"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/server"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,
		server.Module,
	)

	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
