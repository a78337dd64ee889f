package server

import (
	"context"
	"net/http"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/config"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer"
	customerdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/customer/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery"
	deliverydomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/delivery/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount"
	discountdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/discount/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/meal"
	mealdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/meal/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/mealprice"
	mealpricedomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/mealprice/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/observability"
	obsmiddleware "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/observability/logger"
	obsmetrics "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/observability/metrics"
	obstracing "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/observability/tracing"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order"
	orderdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/ratelimit"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription"
	subscriptiondomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/subscription/domain"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist"
	waitlistdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	plan.Module,
	meal.Module,
	mealprice.Module,
	discount.Module,
	pricing.Module,
	customer.Module,
	subscription.Module,
	order.Module,
	delivery.Module,
	waitlist.Module,
	ratelimit.Module,
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func registerGin(obsCfg observability.Config) *gin.Engine {
	return NewEngine(obsCfg)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine          *gin.Engine
	cfg             config.Config
	pricingCfg      *config.PricingConfigHolder
	db              *gorm.DB
	planSvc         plandomain.Service
	mealSvc         mealdomain.Service
	mealPriceSvc    mealpricedomain.Service
	discountSvc     discountdomain.Service
	pricingSvc      pricingdomain.Service
	customerSvc     customerdomain.Service
	subscriptionSvc subscriptiondomain.Service
	orderSvc        orderdomain.Service
	deliverySvc     deliverydomain.Service
	waitlistSvc     waitlistdomain.Service
	publicLimiter   *ratelimit.PublicLimiter
	obsMetrics      *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	PricingCfg      *config.PricingConfigHolder
	DB              *gorm.DB
	PlanSvc         plandomain.Service
	MealSvc         mealdomain.Service
	MealPriceSvc    mealpricedomain.Service
	DiscountSvc     discountdomain.Service
	PricingSvc      pricingdomain.Service
	CustomerSvc     customerdomain.Service
	SubscriptionSvc subscriptiondomain.Service
	OrderSvc        orderdomain.Service
	DeliverySvc     deliverydomain.Service
	WaitlistSvc     waitlistdomain.Service
	PublicLimiter   *ratelimit.PublicLimiter `optional:"true"`
	ObsMetrics      *obsmetrics.Metrics      `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		pricingCfg:      p.PricingCfg,
		db:              p.DB,
		planSvc:         p.PlanSvc,
		mealSvc:         p.MealSvc,
		mealPriceSvc:    p.MealPriceSvc,
		discountSvc:     p.DiscountSvc,
		pricingSvc:      p.PricingSvc,
		customerSvc:     p.CustomerSvc,
		subscriptionSvc: p.SubscriptionSvc,
		orderSvc:        p.OrderSvc,
		deliverySvc:     p.DeliverySvc,
		waitlistSvc:     p.WaitlistSvc,
		publicLimiter:   p.PublicLimiter,
		obsMetrics:      p.ObsMetrics,
	}
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
	s.RegisterAdminRoutes()
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// RegisterAPIRoutes mounts the public storefront surface.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/plans", s.ListPlans)
	api.GET("/meals", s.ListMeals)

	api.POST("/pricing/quote", s.PublicRateLimit(s.allowQuote), s.Quote)
	api.POST("/checkout", s.Checkout)

	api.GET("/subscriptions/:id", s.GetSubscriptionByID)
	api.POST("/subscriptions/:id/pause", s.PauseSubscription)
	api.POST("/subscriptions/:id/resume", s.ResumeSubscription)
	api.POST("/subscriptions/:id/cancel", s.CancelSubscription)

	api.POST("/waitlist", s.PublicRateLimit(s.allowWaitlist), s.WaitlistSignup)
}

// RegisterAdminRoutes mounts the back-office surface.
func (s *Server) RegisterAdminRoutes() {
	admin := s.engine.Group("/admin/api")

	admin.POST("/pricing/preview", s.PricingPreview)

	admin.GET("/plans", s.ListPlans)
	admin.POST("/plans", s.CreatePlan)
	admin.GET("/plans/:id", s.GetPlanByID)
	admin.PATCH("/plans/:id", s.UpdatePlan)
	admin.DELETE("/plans/:id", s.DeletePlan)

	admin.GET("/meals", s.ListMeals)
	admin.POST("/meals", s.CreateMeal)
	admin.GET("/meals/:id", s.GetMealByID)
	admin.PATCH("/meals/:id", s.UpdateMeal)
	admin.DELETE("/meals/:id", s.DeleteMeal)

	admin.GET("/meal_prices", s.ListMealPrices)
	admin.POST("/meal_prices", s.CreateMealPrice)
	admin.GET("/meal_prices/:id", s.GetMealPriceByID)
	admin.PATCH("/meal_prices/:id", s.UpdateMealPrice)
	admin.DELETE("/meal_prices/:id", s.DeleteMealPrice)

	admin.GET("/discounts", s.ListDiscountRules)
	admin.POST("/discounts", s.CreateDiscountRule)
	admin.GET("/discounts/:id", s.GetDiscountRuleByID)
	admin.PATCH("/discounts/:id", s.UpdateDiscountRule)
	admin.DELETE("/discounts/:id", s.DeleteDiscountRule)

	admin.GET("/customers", s.ListCustomers)
	admin.GET("/customers/:id", s.GetCustomerByID)
	admin.PATCH("/customers/:id", s.UpdateCustomer)

	admin.GET("/subscriptions", s.ListSubscriptions)
	admin.GET("/subscriptions/:id", s.GetSubscriptionByID)
	admin.POST("/subscriptions/:id/pause", s.PauseSubscription)
	admin.POST("/subscriptions/:id/resume", s.ResumeSubscription)
	admin.POST("/subscriptions/:id/cancel", s.CancelSubscription)

	admin.GET("/orders", s.ListOrders)
	admin.GET("/orders/export", s.ExportOrdersCSV)
	admin.GET("/orders/:id", s.GetOrderByID)
	admin.POST("/orders/:id/status", s.UpdateOrderStatus)

	admin.GET("/deliveries", s.ListDeliveries)
	admin.POST("/deliveries/:id/status", s.UpdateDeliveryStatus)

	admin.GET("/waitlist", s.ListWaitlist)
}
