package migration

import (
	customerdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/domain"
	deliverydomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery/domain"
	mealdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/meal/domain"
	orderdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	subscriptiondomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription/domain"
	waitlistdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/domain"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/config"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/seed"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// mysql and sqlite are dev/test targets; gorm derives the
			// same schema from the models.
			if err := conn.AutoMigrate(
				&plandomain.Plan{},
				&mealdomain.Meal{},
				&pricingdomain.MealPrice{},
				&pricingdomain.DiscountRule{},
				&customerdomain.Customer{},
				&subscriptiondomain.Subscription{},
				&orderdomain.Order{},
				&deliverydomain.Delivery{},
				&waitlistdomain.Entry{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoCatalog(conn)
		}
		return nil
	}),
)
