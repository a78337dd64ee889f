package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/clock"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/config"
	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/observability"
	orderdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/domain"
	orderrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/repository"
	orderservice "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/order/service"
	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	planrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/repository"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	pricingrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/repository"
	pricingservice "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/service"
	waitlistdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/domain"
	waitlistrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/repository"
	waitlistservice "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/service"
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serverFixture struct {
	db     *gorm.DB
	node   *snowflake.Node
	clock  *clock.FakeClock
	srv    *Server
	planID snowflake.ID
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&plandomain.Plan{},
		&pricingdomain.MealPrice{},
		&pricingdomain.DiscountRule{},
		&orderdomain.Order{},
		&waitlistdomain.Entry{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	fake := clock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	log := zap.NewNop()

	pricingSvc := pricingservice.New(pricingservice.Params{
		DB:       db,
		Log:      log,
		Clock:    fake,
		Repo:     pricingrepository.Provide(),
		PlanRepo: planrepository.Provide(),
	})

	orderSvc := orderservice.New(orderservice.Params{
		DB:    db,
		Log:   log,
		Clock: fake,
		Repo:  orderrepository.Provide(),
	})

	waitlistSvc := waitlistservice.New(waitlistservice.Params{
		DB:    db,
		Log:   log,
		GenID: node,
		Clock: fake,
		Repo:  waitlistrepository.Provide(),
	})

	holder, err := config.NewPricingConfigHolder()
	require.NoError(t, err)

	srv := NewServer(ServerParams{
		Gin:         NewEngine(observability.Config{}),
		Cfg:         config.Config{HTTPPort: "8080"},
		PricingCfg:  holder,
		DB:          db,
		PricingSvc:  pricingSvc,
		OrderSvc:    orderSvc,
		WaitlistSvc: waitlistSvc,
	})
	registerRoutes(srv)

	f := &serverFixture{db: db, node: node, clock: fake, srv: srv}
	f.seedCatalog(t)
	return f
}

func (f *serverFixture) seedCatalog(t *testing.T) {
	t.Helper()
	now := f.clock.Now()

	f.planID = f.node.Generate()
	require.NoError(t, f.db.Create(&plandomain.Plan{
		ID:        f.planID,
		Name:      "Weight Loss",
		Slug:      "weight-loss",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}).Error)

	for mealType, price := range map[string]float64{"Breakfast": 45, "Lunch": 55} {
		require.NoError(t, f.db.Create(&pricingdomain.MealPrice{
			ID:           f.node.Generate(),
			PlanID:       f.planID,
			MealType:     mealType,
			BasePriceMAD: decimal.NewFromFloat(price),
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}).Error)
	}

	rules := []pricingdomain.DiscountRule{
		{DiscountType: pricingdomain.DiscountDaysPerWeek, ConditionValue: 5, DiscountPercentage: decimal.NewFromFloat(0.03), Active: true},
		{DiscountType: pricingdomain.DiscountDurationWeeks, ConditionValue: 4, DiscountPercentage: decimal.NewFromFloat(0.10), Active: true},
	}
	for _, rule := range rules {
		rule.ID = f.node.Generate()
		rule.CreatedAt = now
		rule.UpdatedAt = now
		require.NoError(t, f.db.Create(&rule).Error)
	}
}

func (f *serverFixture) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.srv.Engine().ServeHTTP(rec, req)
	return rec
}

func TestQuoteEndpoint_HappyPath(t *testing.T) {
	f := newServerFixture(t)

	rec := f.post(t, "/api/pricing/quote", gin.H{
		"plan":     "Weight Loss",
		"meals":    []string{"Breakfast", "Lunch"},
		"days":     5,
		"duration": 4,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success     bool                      `json:"success"`
		Currency    string                    `json:"currency"`
		BasePerDay  float64                   `json:"basePerDay"`
		GrossWeekly float64                   `json:"grossWeekly"`
		Total       float64                   `json:"total"`
		Calculation pricingdomain.Calculation `json:"calculation"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "MAD", resp.Currency)
	assert.Equal(t, 100.0, resp.BasePerDay)
	assert.Equal(t, 500.0, resp.GrossWeekly)
	assert.Equal(t, 1746.0, resp.Total)
	assert.Equal(t, 436.5, resp.Calculation.FinalWeekly)
	assert.Len(t, resp.Calculation.DiscountsApplied, 2)
}

func TestQuoteEndpoint_ErrorShapes(t *testing.T) {
	f := newServerFixture(t)

	cases := []struct {
		name       string
		body       gin.H
		wantStatus int
		wantError  string
	}{
		{
			name:       "days out of range",
			body:       gin.H{"plan": "Weight Loss", "meals": []string{"Lunch"}, "days": 8, "duration": 4},
			wantStatus: http.StatusBadRequest,
			wantError:  "days must be between 1 and 7",
		},
		{
			name:       "duration below one",
			body:       gin.H{"plan": "Weight Loss", "meals": []string{"Lunch"}, "days": 5, "duration": 0},
			wantStatus: http.StatusBadRequest,
			wantError:  "duration must be >= 1",
		},
		{
			name:       "missing selection",
			body:       gin.H{"days": 5, "duration": 4},
			wantStatus: http.StatusBadRequest,
			wantError:  "plan/meals missing or invalid",
		},
		{
			name:       "unknown meal for plan",
			body:       gin.H{"plan": "Weight Loss", "meals": []string{"Dinner"}, "days": 5, "duration": 4},
			wantStatus: http.StatusNotFound,
			wantError:  "meals not found for this plan",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := f.post(t, "/api/pricing/quote", tc.body)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantError, resp.Error)
		})
	}
}

func TestAdminPreview_MatchesStorefrontQuote(t *testing.T) {
	f := newServerFixture(t)

	body := gin.H{
		"plan":     "Weight Loss",
		"meals":    []string{"Breakfast", "Lunch"},
		"days":     5,
		"duration": 4,
	}

	quoteRec := f.post(t, "/api/pricing/quote", body)
	require.Equal(t, http.StatusOK, quoteRec.Code)

	previewRec := f.post(t, "/admin/api/pricing/preview", body)
	require.Equal(t, http.StatusOK, previewRec.Code)

	var quoteResp struct {
		Calculation pricingdomain.Calculation `json:"calculation"`
	}
	require.NoError(t, json.Unmarshal(quoteRec.Body.Bytes(), &quoteResp))

	var previewResp struct {
		Success bool                      `json:"success"`
		Data    pricingdomain.Calculation `json:"data"`
	}
	require.NoError(t, json.Unmarshal(previewRec.Body.Bytes(), &previewResp))

	assert.True(t, previewResp.Success)
	assert.Equal(t, quoteResp.Calculation.TotalRoundedMAD, previewResp.Data.TotalRoundedMAD)
	assert.Equal(t, quoteResp.Calculation.FinalWeekly, previewResp.Data.FinalWeekly)
	assert.Equal(t, quoteResp.Calculation.DiscountsApplied, previewResp.Data.DiscountsApplied)
}

func TestWaitlistSignup_DuplicateReturnsSameEntry(t *testing.T) {
	f := newServerFixture(t)

	body := gin.H{"email": "amal@example.com", "plan": "Keto"}

	first := f.post(t, "/api/waitlist", body)
	require.Equal(t, http.StatusOK, first.Code)

	second := f.post(t, "/api/waitlist", body)
	require.Equal(t, http.StatusOK, second.Code)

	var firstResp, secondResp struct {
		Success bool                 `json:"success"`
		Data    waitlistdomain.Entry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &firstResp))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &secondResp))

	assert.True(t, firstResp.Success)
	assert.Equal(t, firstResp.Data.ID, secondResp.Data.ID)
}
