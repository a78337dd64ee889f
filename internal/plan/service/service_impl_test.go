package service

import (
	"context"
	"testing"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	planrepository "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/repository"
	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newPlanService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Plan{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  planrepository.Provide(),
	})
}

func TestPlanCreate_GeneratesSlug(t *testing.T) {
	svc := newPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, domain.CreateRequest{Name: "  Weight Loss  ", Description: "calorie deficit"})
	require.NoError(t, err)

	assert.Equal(t, "Weight Loss", plan.Name)
	assert.Equal(t, "weight-loss", plan.Slug)
	assert.True(t, plan.Active)
}

func TestPlanCreate_RejectsDuplicateName(t *testing.T) {
	svc := newPlanService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateRequest{Name: "Muscle Gain"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "Muscle Gain"})
	assert.ErrorIs(t, err, domain.ErrPlanExists)

	_, err = svc.Create(ctx, domain.CreateRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestPlanUpdate_RenameRefreshesSlug(t *testing.T) {
	svc := newPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, domain.CreateRequest{Name: "Keto"})
	require.NoError(t, err)

	newName := "Keto Premium"
	updated, err := svc.Update(ctx, plan.ID.String(), domain.UpdateRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Keto Premium", updated.Name)
	assert.Equal(t, "keto-premium", updated.Slug)
}

func TestPlanDelete_ThenGetNotFound(t *testing.T) {
	svc := newPlanService(t)
	ctx := context.Background()

	plan, err := svc.Create(ctx, domain.CreateRequest{Name: "Vegan"})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, plan.ID.String()))

	_, err = svc.Get(ctx, plan.ID.String())
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)

	_, err = svc.Get(ctx, "not-a-snowflake")
	assert.ErrorIs(t, err, domain.ErrInvalidPlanID)
}
